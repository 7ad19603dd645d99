package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpost/blog-platform/internal/api/metrics"
	"github.com/inkpost/blog-platform/internal/core/domain"
	"github.com/inkpost/blog-platform/internal/core/ports"
)

// BlogHandler handles HTTP requests for blog CRUD.
type BlogHandler struct {
	blogs ports.BlogService
}

func NewBlogHandler(blogs ports.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

type createBlogRequest struct {
	Title    string `form:"title" validate:"required"`
	Category string `form:"category" validate:"required"`
	About    string `form:"about" validate:"required"`
}

type blogResponse struct {
	Message string       `json:"message"`
	Blog    *domain.Blog `json:"blog,omitempty"`
}

// Create publishes a new blog from a multipart form carrying an image.
// Admin access is enforced by the middleware chain, not here.
//
// @Summary      Create a blog
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Param        blogImage  formData  file  true  "Cover image (jpeg, png or webp)"
// @Success      201  {object}  blogResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blogs/create [post]
func (h *BlogHandler) Create(c echo.Context) error {
	image, err := c.FormFile("blogImage")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "blog image is required")
	}
	contentType := image.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[contentType]; !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid photo format, only jpeg, png and webp are allowed")
	}

	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	author, err := currentUser(c)
	if err != nil {
		return err
	}

	src, err := image.Open()
	if err != nil {
		return fmt.Errorf("open image part: %w", err)
	}
	defer src.Close()

	blog, err := h.blogs.Create(c.Request().Context(), ports.CreateBlogInput{
		Title:            req.Title,
		Category:         req.Category,
		About:            req.About,
		Image:            src,
		ImageContentType: contentType,
		Author:           author,
	})
	if err != nil {
		return err
	}

	metrics.BlogsCreatedTotal.WithLabelValues(blog.Category).Inc()

	return c.JSON(http.StatusCreated, blogResponse{
		Message: "blog has been created",
		Blog:    blog,
	})
}

// Delete removes a blog by id. A missing id fails with 404 before any store
// mutation.
//
// @Summary      Delete a blog
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/remove/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.blogs.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "blog deleted successfully"})
}

// GetAll lists every blog. Public; an empty store yields an empty array.
//
// @Summary      List all blogs
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  domain.Blog
// @Router       /blogs/all-blogs [get]
func (h *BlogHandler) GetAll(c echo.Context) error {
	blogs, err := h.blogs.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// GetSingle returns one blog by id.
//
// @Summary      Get a blog
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog id"
// @Success      200  {object}  domain.Blog
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/single-blog/{id} [get]
func (h *BlogHandler) GetSingle(c echo.Context) error {
	blog, err := h.blogs.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

// GetMine lists the caller's blogs. An empty result set fails with 404.
//
// @Summary      List own blogs
// @Tags         blogs
// @Produce      json
// @Success      200  {array}   domain.Blog
// @Failure      404  {object}  map[string]string
// @Router       /blogs/my-blog [get]
func (h *BlogHandler) GetMine(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	blogs, err := h.blogs.GetByAuthor(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// Update merge-patches the request body onto the stored blog. No field
// allow-list: any stored field can be overwritten.
//
// @Summary      Update a blog
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Blog id"
// @Success      200  {object}  blogResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/update/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	patch := map[string]any{}
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	blog, err := h.blogs.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, blogResponse{
		Message: "blog updated successfully",
		Blog:    blog,
	})
}
