package ports

import (
	"context"
	"io"

	"github.com/inkpost/blog-platform/internal/core/domain"
)

// RegisterInput carries the fields and photo of a registration request.
// The photo must already have passed the content-type allow-list check.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Phone     string
	Education string
	Role      string

	Photo            io.Reader
	PhotoContentType string
}

type UserService interface {
	// Register uploads the photo, creates the account and issues a session
	// token. The upload always happens before the store write.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	// Login authenticates by (email, role, password) and issues a token.
	// A wrong role is indistinguishable from an unknown email.
	Login(ctx context.Context, email, role, password string) (string, *domain.User, error)
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
}
