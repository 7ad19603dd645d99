package ports

import (
	"context"

	"github.com/inkpost/blog-platform/internal/core/domain"
)

// BlogRepository defines the persistence contract for blog records.
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	FindAll(ctx context.Context) ([]domain.Blog, error)
	FindByCreator(ctx context.Context, userID string) ([]domain.Blog, error)
	// UpdateByID merge-patches the given fields onto the stored document and
	// returns the updated record.
	UpdateByID(ctx context.Context, id string, patch map[string]any) (*domain.Blog, error)
	DeleteByID(ctx context.Context, id string) error
}
