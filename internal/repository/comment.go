package repository

import (
	"context"

	"lumagram/internal/models"
	"lumagram/internal/query"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	List(ctx context.Context, p query.Params) ([]models.Comment, error)
	ListReplies(ctx context.Context, parentID uint) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

var commentListSpec = query.Spec{
	FilterColumns: map[string]string{
		"post_id":   "comments.post_id",
		"user_id":   "comments.user_id",
		"parent_id": "comments.parent_id",
	},
	SearchColumn: "comments.text",
	SortColumns:  []string{"id", "created_at"},
	DefaultSort:  "comments.id ASC",
}

func (r *commentRepository) withLikeCount(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Comment{}).
		Select("comments.*, " +
			"(SELECT COUNT(*) FROM comment_likes WHERE comment_likes.comment_id = comments.id AND comment_likes.like = TRUE) AS likes_count")
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return translateError(err, "comment", comment.PostID)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.withLikeCount(ctx).
		Preload("User").
		Where("comments.id = ?", id).
		First(&comment).Error
	if err != nil {
		return nil, translateError(err, "comment", id)
	}
	return &comment, nil
}

func (r *commentRepository) List(ctx context.Context, p query.Params) ([]models.Comment, error) {
	var comments []models.Comment
	db := r.withLikeCount(ctx)
	if err := query.Apply(db, commentListSpec, p).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ListReplies returns direct children of a comment in creation order.
func (r *commentRepository) ListReplies(ctx context.Context, parentID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return translateError(err, "comment", comment.ID)
	}
	return nil
}

// Delete removes a comment; replies and comment likes cascade at the
// database layer.
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("comment", id)
	}
	return nil
}
