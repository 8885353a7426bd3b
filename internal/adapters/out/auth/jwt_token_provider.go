package auth

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenIsInvalid is returned when a presented token fails signature or
// claims verification.
var ErrTokenIsInvalid = errors.New("token is invalid")

// JWTTokenProvider issues and verifies HS256-signed JWTs carrying the user
// identity.
type JWTTokenProvider struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokenProvider creates a token provider. The secret must not be
// empty and the lifetime must be positive.
func NewJWTTokenProvider(secret string, ttl time.Duration) (JWTTokenProvider, error) {
	if secret == "" {
		return JWTTokenProvider{}, errs.NewValueIsRequiredError("secret")
	}
	if ttl <= 0 {
		return JWTTokenProvider{}, errs.NewValueIsInvalidErrorWithCause("ttl",
			fmt.Errorf("token lifetime %v is not positive", ttl))
	}

	return JWTTokenProvider{secret: []byte(secret), ttl: ttl}, nil
}

// Generate returns a signed token carrying the user's identity.
func (p JWTTokenProvider) Generate(u *user.User) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   u.ID().String(),
		"email": u.Email().String(),
		"iat":   now.Unix(),
		"exp":   now.Add(p.ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// Verify checks the token signature and expiry and returns the user
// identifier from the subject claim.
func (p JWTTokenProvider) Verify(tokenString string) (kernel.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return kernel.UUID{}, ErrTokenIsInvalid
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return kernel.UUID{}, ErrTokenIsInvalid
	}

	userID, err := kernel.UUIDFromString(subject)
	if err != nil {
		return kernel.UUID{}, ErrTokenIsInvalid
	}

	return userID, nil
}
