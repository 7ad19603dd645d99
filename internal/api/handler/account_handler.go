package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpost/blog-platform/internal/api/metrics"
	"github.com/inkpost/blog-platform/internal/core/domain"
	"github.com/inkpost/blog-platform/internal/core/ports"
)

// allowedImageTypes is the content-type allow-set for uploaded images.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// AccountHandler handles HTTP requests for registration, login and user listings.
type AccountHandler struct {
	users ports.UserService
}

func NewAccountHandler(users ports.UserService) *AccountHandler {
	return &AccountHandler{users: users}
}

type registerRequest struct {
	Name      string `form:"name" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required"`
	Phone     string `form:"phone" validate:"required"`
	Education string `form:"education" validate:"required"`
	Role      string `form:"role" validate:"required,oneof=user admin"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

// Register creates a new account from a multipart form carrying a photo.
//
// @Summary      Register a new account
// @Tags         accounts
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo  formData  file  true  "Profile photo (jpeg, png or webp)"
// @Success      201  {object}  authResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /accounts/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	photo, err := c.FormFile("photo")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user photo is required")
	}
	contentType := photo.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[contentType]; !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid photo format, only jpeg, png and webp are allowed")
	}

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	src, err := photo.Open()
	if err != nil {
		return fmt.Errorf("open photo part: %w", err)
	}
	defer src.Close()

	user, token, err := h.users.Register(c.Request().Context(), ports.RegisterInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Phone:            req.Phone,
		Education:        req.Education,
		Role:             req.Role,
		Photo:            src,
		PhotoContentType: contentType,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(user.Role).Inc()
	setSessionCookie(c, token)

	return c.JSON(http.StatusCreated, authResponse{
		Message: fmt.Sprintf("%s registered successfully", user.Name),
		User:    user,
		Token:   token,
	})
}

// Login authenticates an account and sets the session cookie.
//
// @Summary      Login
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /accounts/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.users.Login(c.Request().Context(), req.Email, req.Role, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	setSessionCookie(c, token)

	return c.JSON(http.StatusOK, authResponse{
		Message: fmt.Sprintf("welcome %s", user.Name),
		Token:   token,
	})
}

// Logout clears the session cookie. Idempotent; always succeeds.
//
// @Summary      Logout
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /accounts/logout [get]
func (h *AccountHandler) Logout(c echo.Context) error {
	clearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "logout successfully"})
}

// MyProfile returns the authenticated user verbatim.
//
// @Summary      Get own profile
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  map[string]domain.User
// @Failure      401  {object}  map[string]string
// @Router       /accounts/my-profile [get]
func (h *AccountHandler) MyProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.User{"user": user})
}

// GetAdmins lists every admin account. Unpaginated by design at this scale.
//
// @Summary      List admins
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  map[string][]domain.User
// @Router       /accounts/admins [get]
func (h *AccountHandler) GetAdmins(c echo.Context) error {
	admins, err := h.users.ListByRole(c.Request().Context(), domain.RoleAdmin)
	if err != nil {
		return err
	}
	if admins == nil {
		admins = []domain.User{}
	}
	return c.JSON(http.StatusOK, map[string][]domain.User{"admins": admins})
}

// GetAllUsers lists every regular user account.
//
// @Summary      List users
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  map[string][]domain.User
// @Router       /blogs/all-users [get]
func (h *AccountHandler) GetAllUsers(c echo.Context) error {
	users, err := h.users.ListByRole(c.Request().Context(), domain.RoleUser)
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, map[string][]domain.User{"users": users})
}

// DeleteUser removes an account by id. Blogs created by the account keep
// their dangling creator reference.
//
// @Summary      Delete a user
// @Tags         accounts
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/user/delete/{id} [delete]
func (h *AccountHandler) DeleteUser(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted successfully"})
}
