package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkpost/blog-platform/internal/core/domain"
)

const collectionBlogs = "blogs"

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection(collectionBlogs)}
}

type mongoBlog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	About       string             `bson:"about"`
	Category    string             `bson:"category"`
	Image       domain.Image       `bson:"image"`
	AuthorName  string             `bson:"author_name"`
	AuthorPhoto string             `bson:"author_photo"`
	CreatedBy   primitive.ObjectID `bson:"created_by,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mb *mongoBlog) toDomain() *domain.Blog {
	createdBy := ""
	if !mb.CreatedBy.IsZero() {
		createdBy = mb.CreatedBy.Hex()
	}
	return &domain.Blog{
		ID:          mb.ID.Hex(),
		Title:       mb.Title,
		About:       mb.About,
		Category:    mb.Category,
		Image:       mb.Image,
		AuthorName:  mb.AuthorName,
		AuthorPhoto: mb.AuthorPhoto,
		CreatedBy:   createdBy,
		CreatedAt:   mb.CreatedAt,
		UpdatedAt:   mb.UpdatedAt,
	}
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBlog{
		Title:       blog.Title,
		About:       blog.About,
		Category:    blog.Category,
		Image:       blog.Image,
		AuthorName:  blog.AuthorName,
		AuthorPhoto: blog.AuthorPhoto,
		CreatedAt:   blog.CreatedAt,
		UpdatedAt:   blog.UpdatedAt,
	}
	if blog.CreatedBy != "" {
		oid, err := primitive.ObjectIDFromHex(blog.CreatedBy)
		if err != nil {
			return nil, fmt.Errorf("creator id %q: %w", blog.CreatedBy, err)
		}
		doc.CreatedBy = oid
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	created := *blog
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidBlogID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mb mongoBlog
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return mb.toDomain(), nil
}

func (r *BlogRepository) FindAll(ctx context.Context) ([]domain.Blog, error) {
	return r.find(ctx, bson.M{})
}

func (r *BlogRepository) FindByCreator(ctx context.Context, userID string) ([]domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("creator id %q: %w", userID, err)
	}
	return r.find(ctx, bson.M{"created_by": oid})
}

// UpdateByID merge-patches the given fields onto the stored document. There
// is no field allow-list: any stored field, including the author snapshot,
// can be overwritten. The document ids are stripped from the patch.
func (r *BlogRepository) UpdateByID(ctx context.Context, id string, patch map[string]any) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidBlogID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	for k, v := range patch {
		if k == "_id" || k == "id" {
			continue
		}
		set[k] = v
	}
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mb mongoBlog
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return mb.toDomain(), nil
}

func (r *BlogRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidBlogID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

// EnsureIndexes creates the creator index used by the my-blogs listing.
func (r *BlogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *BlogRepository) find(ctx context.Context, filter bson.M) ([]domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find blogs: %w", err)
	}
	defer cur.Close(ctx)

	var blogs []domain.Blog
	for cur.Next(ctx) {
		var mb mongoBlog
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode blog: %w", err)
		}
		blogs = append(blogs, *mb.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate blogs: %w", err)
	}
	return blogs, nil
}
