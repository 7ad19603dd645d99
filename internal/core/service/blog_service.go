package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkpost/blog-platform/internal/core/domain"
	"github.com/inkpost/blog-platform/internal/core/ports"
)

// BlogService implements blog CRUD on top of the media store and repository.
type BlogService struct {
	blogs  ports.BlogRepository
	media  ports.MediaStore
	logger zerolog.Logger
}

func NewBlogService(blogs ports.BlogRepository, media ports.MediaStore, logger zerolog.Logger) *BlogService {
	return &BlogService{blogs: blogs, media: media, logger: logger}
}

// Create validates the body length, uploads the image, snapshots the author
// name/photo and writes the record. The minimum-length check runs here so a
// short body surfaces as a clean validation error instead of leaking from the
// storage layer.
func (s *BlogService) Create(ctx context.Context, input ports.CreateBlogInput) (*domain.Blog, error) {
	if len(input.About) < domain.MinAboutLength {
		return nil, domain.ErrAboutTooShort
	}

	image, err := s.media.Upload(ctx, input.Image, input.ImageContentType)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("blog image upload failed")
		return nil, domain.ErrUploadFailed
	}

	now := time.Now().UTC()
	blog := &domain.Blog{
		Title:       input.Title,
		About:       input.About,
		Category:    input.Category,
		Image:       image,
		AuthorName:  input.Author.Name,
		AuthorPhoto: input.Author.Photo.URL,
		CreatedBy:   input.Author.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.blogs.Create(ctx, blog)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("blog_id", created.ID).Str("created_by", created.CreatedBy).Msg("blog created")
	return created, nil
}

// Delete fails with ErrBlogNotFound before touching the store when the id
// does not exist.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	if _, err := s.blogs.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.blogs.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("blog_id", id).Msg("blog deleted")
	return nil
}

// GetAll returns every blog; an empty store yields an empty slice, not an error.
func (s *BlogService) GetAll(ctx context.Context) ([]domain.Blog, error) {
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if blogs == nil {
		blogs = []domain.Blog{}
	}
	return blogs, nil
}

func (s *BlogService) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	return s.blogs.FindByID(ctx, id)
}

// GetByAuthor returns the caller's blogs. An empty result set is reported as
// ErrNoBlogsFound rather than an empty success.
func (s *BlogService) GetByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error) {
	blogs, err := s.blogs.FindByCreator(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, domain.ErrNoBlogsFound
	}
	return blogs, nil
}

// Update applies an unrestricted merge-patch onto the stored record. Any
// stored field, including the denormalized author snapshot, can be
// overwritten.
func (s *BlogService) Update(ctx context.Context, id string, patch map[string]any) (*domain.Blog, error) {
	updated, err := s.blogs.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("blog_id", id).Msg("blog updated")
	return updated, nil
}
