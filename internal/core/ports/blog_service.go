package ports

import (
	"context"
	"io"

	"github.com/inkpost/blog-platform/internal/core/domain"
)

// CreateBlogInput carries the fields, image and creator of a new blog.
// Author name/photo are snapshotted onto the record at creation time.
type CreateBlogInput struct {
	Title    string
	Category string
	About    string

	Image            io.Reader
	ImageContentType string

	Author *domain.User
}

type BlogService interface {
	Create(ctx context.Context, input CreateBlogInput) (*domain.Blog, error)
	// Delete looks the blog up first and fails with ErrBlogNotFound before
	// any store mutation is attempted.
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]domain.Blog, error)
	GetByID(ctx context.Context, id string) (*domain.Blog, error)
	GetByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error)
	Update(ctx context.Context, id string, patch map[string]any) (*domain.Blog, error)
}
