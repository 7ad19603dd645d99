package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpost/blog-platform/internal/api/metrics"
	"github.com/inkpost/blog-platform/internal/core/domain"
	"github.com/inkpost/blog-platform/internal/core/ports"
)

// SessionCookie is the name of the HTTP-only cookie carrying the session token.
const SessionCookie = "jwt"

// ContextUserKey is the echo context key under which Auth stores the resolved user.
const ContextUserKey = "user"

// Auth resolves the session cookie to a user and injects it into the context.
// Expired and malformed tokens both fail with 401, differing only in message.
// A valid token whose user no longer exists fails with 404.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_cookie").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
			}

			userID, err := tokens.Verify(cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.AuthRejectionsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				metrics.AuthRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("user_gone").Inc()
					return echo.NewHTTPError(http.StatusNotFound, "user not found")
				}
				return err
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}
