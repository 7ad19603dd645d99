package ports

import (
	"context"

	"github.com/inkpost/blog-platform/internal/core/domain"
)

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Issue signs a token for the user and persists it on the user record
	// (last token wins; previously issued tokens stay valid until expiry).
	Issue(ctx context.Context, user *domain.User) (string, error)
	// Verify validates signature and expiry and returns the embedded user id.
	Verify(token string) (string, error)
}
