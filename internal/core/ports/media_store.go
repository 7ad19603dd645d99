package ports

import (
	"context"
	"io"

	"github.com/inkpost/blog-platform/internal/core/domain"
)

// MediaStore is the external image host. Upload stores the content and
// returns a durable identifier plus a retrievable URL.
type MediaStore interface {
	Upload(ctx context.Context, content io.Reader, contentType string) (domain.Image, error)
}
