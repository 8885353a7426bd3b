package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/auth"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(httpadapter.RateLimiterMiddleware(1, 1))
	e.GET("/ping", func(ctx echo.Context) error {
		return ctx.NoContent(nethttp.StatusOK)
	})

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(nethttp.MethodGet, "/ping", nil))
	assert.Equal(t, nethttp.StatusOK, first.Code)

	// The bucket holds a single token, so an immediate second request
	// must be rejected.
	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(nethttp.MethodGet, "/ping", nil))
	assert.Equal(t, nethttp.StatusTooManyRequests, second.Code)
}

func TestAuthMiddleware(t *testing.T) {
	provider, err := auth.NewJWTTokenProvider("test-signing-secret", time.Hour)
	require.NoError(t, err)

	email, err := kernel.NewEmail("rider@example.com")
	require.NoError(t, err)
	account, err := user.NewUser(kernel.NewUUID(), email, "$2a$10$hash", "Sam", "Rider")
	require.NoError(t, err)

	e := echo.New()
	group := e.Group("", httpadapter.AuthMiddleware(provider))
	group.GET("/whoami", func(ctx echo.Context) error {
		userID, _ := ctx.Get("userID").(kernel.UUID)
		return ctx.String(nethttp.StatusOK, userID.String())
	})

	t.Run("should reject missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/whoami", nil))

		assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject malformed token", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodGet, "/whoami", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.token")

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	})

	t.Run("should pass valid token and expose user id", func(t *testing.T) {
		token, err := provider.Generate(account)
		require.NoError(t, err)

		req := httptest.NewRequest(nethttp.MethodGet, "/whoami", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, nethttp.StatusOK, rec.Code)
		assert.Equal(t, account.ID().String(), rec.Body.String())
	})
}
