package repository

import (
	"context"

	"lumagram/internal/models"
	"lumagram/internal/query"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, p query.Params) ([]models.Post, error)
	ListByOwner(ctx context.Context, ownerID uint, p query.Params) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository instance
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

var postListSpec = query.Spec{
	FilterColumns: map[string]string{
		"hashtag_id": "posts.hashtag_id",
		"user_id":    "posts.user_id",
	},
	SearchColumn: "posts.description",
	SortColumns:  []string{"id", "created_at"},
	DefaultSort:  "posts.id ASC",
}

// withCounts decorates post queries with approval and comment tallies so
// detail payloads carry them without N+1 lookups.
func (r *postRepository) withCounts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Post{}).
		Select("posts.*, " +
			"(SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id AND post_likes.like = TRUE) AS likes_count, " +
			"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return translateError(err, "post", post.UserID)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.withCounts(ctx).
		Preload("User").
		Preload("Hashtag").
		Where("posts.id = ?", id).
		First(&post).Error
	if err != nil {
		return nil, translateError(err, "post", id)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, p query.Params) ([]models.Post, error) {
	var posts []models.Post
	db := r.withCounts(ctx)
	if err := query.Apply(db, postListSpec, p).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListByOwner(ctx context.Context, ownerID uint, p query.Params) ([]models.Post, error) {
	var posts []models.Post
	db := r.withCounts(ctx).Where("posts.user_id = ?", ownerID)
	if err := query.Apply(db, postListSpec, p).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return translateError(err, "post", post.ID)
	}
	return nil
}

// Delete removes a post; comments, likes and saved-collection entries go
// with it via ON DELETE CASCADE.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("post", id)
	}
	return nil
}
