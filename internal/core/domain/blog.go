package domain

import (
	"errors"
	"time"
)

// MinAboutLength is the minimum accepted length of a blog body.
const MinAboutLength = 200

var ErrBlogNotFound = errors.New("blog not found")
var ErrNoBlogsFound = errors.New("no blogs found for this user")
var ErrInvalidBlogID = errors.New("invalid blog id")
var ErrAboutTooShort = errors.New("about should contain at least 200 characters")
var ErrUploadFailed = errors.New("failed to upload image")

// Blog is a published content record. AuthorName and AuthorPhoto are a
// snapshot of the creator at creation time; they are not re-synced when the
// author later changes. CreatedBy may point at a since-deleted user.
type Blog struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	About       string    `json:"about"`
	Category    string    `json:"category"`
	Image       Image     `json:"image"`
	AuthorName  string    `json:"author_name"`
	AuthorPhoto string    `json:"author_photo"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
