package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkpost/blog-platform/internal/core/domain"
	"github.com/inkpost/blog-platform/internal/core/ports"
)

// passwordHashCost is the bcrypt work factor applied to stored passwords.
const passwordHashCost = 10

// UserService implements account registration, login and admin user management.
type UserService struct {
	users  ports.UserRepository
	media  ports.MediaStore
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, media ports.MediaStore, tokens ports.TokenService, logger zerolog.Logger) *UserService {
	return &UserService{users: users, media: media, tokens: tokens, logger: logger}
}

// Register uploads the photo, creates the user and issues a session token.
// The upload always completes before the store write; an upload that succeeds
// but is followed by a failed write leaves an orphaned asset, which is
// accepted and not reconciled.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	if !domain.ValidRole(input.Role) {
		return nil, "", domain.ErrInvalidCredentials
	}

	photo, err := s.media.Upload(ctx, input.Photo, input.PhotoContentType)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("photo upload failed")
		return nil, "", domain.ErrUploadFailed
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), passwordHashCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Education:    input.Education,
		Role:         input.Role,
		Photo:        photo,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(ctx, created)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, token, nil
}

// Login authenticates by (email, role, password). Role is part of the lookup
// key: a real account queried with the wrong role fails exactly like an
// unknown email.
func (s *UserService) Login(ctx context.Context, email, role, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	// Should not happen; guards against records written without a hash.
	if user.PasswordHash == "" {
		return "", nil, domain.ErrMissingPasswordHash
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// ListByRole returns every user carrying the given role. The scan is
// unbounded; pagination is out of scope at this size.
func (s *UserService) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	return s.users.FindByRole(ctx, role)
}

// Delete removes a user unconditionally. Blogs created by the user are left
// in place with a dangling creator reference.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
