package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists with this email")
var ErrInvalidCredentials = errors.New("invalid email, role or password")
var ErrMissingPasswordHash = errors.New("user password is missing")

// ValidRole reports whether r is one of the accepted account roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// Image is a media-host asset reference. PublicID and URL are always set
// together; a record never carries one without the other.
type Image struct {
	PublicID string `json:"public_id" bson:"public_id"`
	URL      string `json:"url" bson:"url"`
}

// User models a registered account (admin or regular user).
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Education    string    `json:"education"`
	Role         string    `json:"role"`
	Photo        Image     `json:"photo"`
	Token        string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
