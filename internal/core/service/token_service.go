package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inkpost/blog-platform/internal/core/domain"
	"github.com/inkpost/blog-platform/internal/core/ports"
)

// defaultTokenTTL is the fixed session validity window.
const defaultTokenTTL = 90 * 24 * time.Hour

// TokenService issues and verifies HS256 session tokens. Issued tokens are
// also persisted on the user record, last token wins. Verification checks
// signature and expiry only; it does not compare against the persisted value,
// so older tokens remain usable until they expire.
type TokenService struct {
	users  ports.UserRepository
	secret string
	ttl    time.Duration
}

func NewTokenService(users ports.UserRepository, secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{users: users, secret: secret, ttl: ttl}
}

func (s *TokenService) Issue(ctx context.Context, user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.users.UpdateToken(ctx, user.ID, signed); err != nil {
		return "", fmt.Errorf("persist token: %w", err)
	}

	return signed, nil
}

func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return "", domain.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", domain.ErrTokenInvalid
	}
	return userID, nil
}
