package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpost/blog-platform/internal/api/metrics"
	"github.com/inkpost/blog-platform/internal/core/domain"
)

// RBAC enforces role-based access control on an already-authenticated request.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(ContextUserKey).(*domain.User)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
			}
			if _, ok := allowed[user.Role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, fmt.Sprintf("user with role %s is not authorized", user.Role))
			}
			return next(c)
		}
	}
}

// OwnerOrAdmin allows the request when the authenticated user is an admin or
// when their id matches the :id path parameter. Currently wired to no route;
// kept available for owner-scoped endpoints.
func OwnerOrAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(ContextUserKey).(*domain.User)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
			}
			if user.Role == domain.RoleAdmin || user.ID == c.Param("id") {
				return next(c)
			}
			metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
			return echo.NewHTTPError(http.StatusForbidden, "you are not authorized to access this resource")
		}
	}
}
