package ports

import (
	"context"

	"github.com/inkpost/blog-platform/internal/core/domain"
)

// UserRepository defines the persistence contract for account records.
// Uniqueness of email and phone is enforced by the store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByEmailAndRole(ctx context.Context, email, role string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByRole(ctx context.Context, role string) ([]domain.User, error)
	UpdateToken(ctx context.Context, id, token string) error
	DeleteByID(ctx context.Context, id string) error
}
