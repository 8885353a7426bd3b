package http

import (
	"net/http"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// userIDContextKey is where the auth middleware stores the authenticated
// user id on the echo context.
const userIDContextKey = "userID"

// TokenVerifier checks a presented bearer token and extracts the user
// identity from it.
type TokenVerifier interface {
	Verify(token string) (kernel.UUID, error)
}

// RateLimiterMiddleware rejects requests above the configured rate with
// 429. One shared bucket protects the whole API.
func RateLimiterMiddleware(rps float64, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !limiter.Allow() {
				return ctx.JSON(http.StatusTooManyRequests, ErrorResponse{
					Code:    http.StatusTooManyRequests,
					Message: "rate limit exceeded",
				})
			}
			return next(ctx)
		}
	}
}

// AuthMiddleware requires a valid bearer token and stores the user id on
// the request context.
func AuthMiddleware(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			ctx.Set(userIDContextKey, userID)
			return next(ctx)
		}
	}
}

// authenticatedUserID returns the user id stored by AuthMiddleware.
func authenticatedUserID(ctx echo.Context) (kernel.UUID, bool) {
	userID, ok := ctx.Get(userIDContextKey).(kernel.UUID)
	return userID, ok
}
