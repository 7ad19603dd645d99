package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inkpost/blog-platform/internal/core/domain"
	"github.com/inkpost/blog-platform/internal/core/ports"
)

type stubBlogRepo struct {
	byID    map[string]*domain.Blog
	deletes []string
	updates []string
	nextID  int
}

func newStubBlogRepo() *stubBlogRepo {
	return &stubBlogRepo{byID: make(map[string]*domain.Blog)}
}

func (r *stubBlogRepo) Create(_ context.Context, blog *domain.Blog) (*domain.Blog, error) {
	clone := *blog
	r.nextID++
	clone.ID = "blog-" + strings.Repeat("0", r.nextID)
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubBlogRepo) FindByID(_ context.Context, id string) (*domain.Blog, error) {
	if b, ok := r.byID[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, domain.ErrBlogNotFound
}

func (r *stubBlogRepo) FindAll(_ context.Context) ([]domain.Blog, error) {
	var blogs []domain.Blog
	for _, b := range r.byID {
		blogs = append(blogs, *b)
	}
	return blogs, nil
}

func (r *stubBlogRepo) FindByCreator(_ context.Context, userID string) ([]domain.Blog, error) {
	var blogs []domain.Blog
	for _, b := range r.byID {
		if b.CreatedBy == userID {
			blogs = append(blogs, *b)
		}
	}
	return blogs, nil
}

func (r *stubBlogRepo) UpdateByID(_ context.Context, id string, patch map[string]any) (*domain.Blog, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBlogNotFound
	}
	r.updates = append(r.updates, id)
	if title, ok := patch["title"].(string); ok {
		b.Title = title
	}
	if category, ok := patch["category"].(string); ok {
		b.Category = category
	}
	clone := *b
	return &clone, nil
}

func (r *stubBlogRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrBlogNotFound
	}
	delete(r.byID, id)
	r.deletes = append(r.deletes, id)
	return nil
}

func createBlogInput() ports.CreateBlogInput {
	return ports.CreateBlogInput{
		Title:            "On Gophers",
		Category:         "go",
		About:            strings.Repeat("a", domain.MinAboutLength),
		Image:            strings.NewReader("fake image bytes"),
		ImageContentType: "image/png",
		Author: &domain.User{
			ID:   "64f000000000000000000001",
			Name: "alice",
			Role: domain.RoleAdmin,
			Photo: domain.Image{
				PublicID: "uploads/alice.jpg",
				URL:      "https://cdn.example.com/uploads/alice.jpg",
			},
		},
	}
}

func TestBlogService_Create_SnapshotsAuthor(t *testing.T) {
	repo := newStubBlogRepo()
	svc := NewBlogService(repo, &stubMediaStore{}, zerolog.Nop())

	blog, err := svc.Create(context.Background(), createBlogInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if blog.AuthorName != "alice" {
		t.Fatalf("expected author name snapshot, got %q", blog.AuthorName)
	}
	if blog.AuthorPhoto != "https://cdn.example.com/uploads/alice.jpg" {
		t.Fatalf("expected author photo snapshot, got %q", blog.AuthorPhoto)
	}
	if blog.CreatedBy != "64f000000000000000000001" {
		t.Fatalf("expected creator reference, got %q", blog.CreatedBy)
	}
	if blog.Image.PublicID == "" || blog.Image.URL == "" {
		t.Fatalf("expected image id and url to be set together, got %+v", blog.Image)
	}
}

func TestBlogService_Create_ShortAbout(t *testing.T) {
	repo := newStubBlogRepo()
	media := &stubMediaStore{}
	svc := NewBlogService(repo, media, zerolog.Nop())

	input := createBlogInput()
	input.About = strings.Repeat("a", domain.MinAboutLength-1)

	if _, err := svc.Create(context.Background(), input); err != domain.ErrAboutTooShort {
		t.Fatalf("expected ErrAboutTooShort, got %v", err)
	}
	if media.uploads != 0 {
		t.Fatalf("media host should not be called for a short body")
	}
	if len(repo.byID) != 0 {
		t.Fatalf("store should not be called for a short body")
	}
}

func TestBlogService_Create_UploadFailure(t *testing.T) {
	repo := newStubBlogRepo()
	svc := NewBlogService(repo, &stubMediaStore{fail: true}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), createBlogInput()); err != domain.ErrUploadFailed {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("no blog record must exist after a failed upload")
	}
}

func TestBlogService_Delete_MissingID(t *testing.T) {
	repo := newStubBlogRepo()
	svc := NewBlogService(repo, &stubMediaStore{}, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); err != domain.ErrBlogNotFound {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
	if len(repo.deletes) != 0 {
		t.Fatalf("delete must not reach the store for a missing id")
	}
}

func TestBlogService_Delete_Success(t *testing.T) {
	repo := newStubBlogRepo()
	svc := NewBlogService(repo, &stubMediaStore{}, zerolog.Nop())

	blog, err := svc.Create(context.Background(), createBlogInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), blog.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(repo.deletes) != 1 {
		t.Fatalf("expected one store delete, got %d", len(repo.deletes))
	}
}

func TestBlogService_GetAll_Empty(t *testing.T) {
	svc := NewBlogService(newStubBlogRepo(), &stubMediaStore{}, zerolog.Nop())

	blogs, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if blogs == nil || len(blogs) != 0 {
		t.Fatalf("expected empty slice, got %v", blogs)
	}
}

func TestBlogService_GetByAuthor_Empty(t *testing.T) {
	svc := NewBlogService(newStubBlogRepo(), &stubMediaStore{}, zerolog.Nop())

	if _, err := svc.GetByAuthor(context.Background(), "nobody"); err != domain.ErrNoBlogsFound {
		t.Fatalf("expected ErrNoBlogsFound, got %v", err)
	}
}

func TestBlogService_GetByAuthor(t *testing.T) {
	repo := newStubBlogRepo()
	svc := NewBlogService(repo, &stubMediaStore{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), createBlogInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	blogs, err := svc.GetByAuthor(context.Background(), "64f000000000000000000001")
	if err != nil {
		t.Fatalf("GetByAuthor returned error: %v", err)
	}
	if len(blogs) != 1 {
		t.Fatalf("expected one blog, got %d", len(blogs))
	}
}

func TestBlogService_Update(t *testing.T) {
	repo := newStubBlogRepo()
	svc := NewBlogService(repo, &stubMediaStore{}, zerolog.Nop())

	blog, err := svc.Create(context.Background(), createBlogInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), blog.ID, map[string]any{"title": "Renamed"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("expected patched title, got %q", updated.Title)
	}
	if updated.Image.PublicID == "" || updated.Image.URL == "" {
		t.Fatalf("image pair must survive an unrelated update, got %+v", updated.Image)
	}

	if _, err := svc.Update(context.Background(), "missing", map[string]any{"title": "x"}); err != domain.ErrBlogNotFound {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}
