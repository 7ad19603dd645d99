package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Limiter is the budget check backing RateLimit. The Redis fixed-window
// limiter satisfies it.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit throttles requests per client IP. Over budget fails with 429; a
// limiter error propagates to the central error handler.
func RateLimit(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				return err
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
