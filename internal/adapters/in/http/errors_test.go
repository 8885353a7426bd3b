package http

import (
	"errors"
	"net/http"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("order", kernel.NewUUID()), http.StatusNotFound},
		{"already exists", errs.NewObjectAlreadyExistsError("user"), http.StatusConflict},
		{"version conflict", errs.NewVersionIsInvalidErrorWithCause("delivery person"), http.StatusConflict},
		{"invalid transition", errs.NewInvalidTransitionError("status", "Created", "Delivered"), http.StatusConflict},
		{"locked order", order.ErrOrderIsLocked, http.StatusConflict},
		{"bad credentials", commands.ErrInvalidCredentials, http.StatusUnauthorized},
		{"closed restaurant", commands.ErrRestaurantIsClosed, http.StatusUnprocessableEntity},
		{"invalid value", errs.NewValueIsInvalidError("quantity"), http.StatusUnprocessableEntity},
		{"required value", errs.NewValueIsRequiredError("name"), http.StatusUnprocessableEntity},
		{"out of range", errs.NewValueIsOutOfRangeError("latitude", 91.0, -90.0, 90.0), http.StatusUnprocessableEntity},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}
