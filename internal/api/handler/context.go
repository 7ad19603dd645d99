package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpost/blog-platform/internal/api/middleware"
	"github.com/inkpost/blog-platform/internal/core/domain"
)

// currentUser extracts the user injected by the Auth middleware. Absence
// means the route was wired without the middleware; reject with 401 rather
// than dereferencing nil downstream.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextUserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return user, nil
}
