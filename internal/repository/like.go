package repository

import (
	"context"

	"lumagram/internal/models"
	"lumagram/internal/query"

	"gorm.io/gorm"
)

// PostLikeRepository defines the interface for post like records. Likes are
// rows keyed (user, post), not toggles: updating flips the boolean in place.
type PostLikeRepository interface {
	Create(ctx context.Context, like *models.PostLike) error
	GetByID(ctx context.Context, id uint) (*models.PostLike, error)
	GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.PostLike, error)
	List(ctx context.Context, p query.Params) ([]models.PostLike, error)
	Update(ctx context.Context, like *models.PostLike) error
	Delete(ctx context.Context, id uint) error
	CountForPost(ctx context.Context, postID uint) (int64, error)
}

type postLikeRepository struct {
	db *gorm.DB
}

// NewPostLikeRepository creates a new post like repository instance
func NewPostLikeRepository(db *gorm.DB) PostLikeRepository {
	return &postLikeRepository{db: db}
}

var postLikeListSpec = query.Spec{
	FilterColumns: map[string]string{
		"user_id": "user_id",
		"post_id": "post_id",
		"like":    "\"like\"",
	},
	SortColumns: []string{"id", "created_at"},
	DefaultSort: "id ASC",
}

func (r *postLikeRepository) Create(ctx context.Context, like *models.PostLike) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		return translateError(err, "post like", like.PostID)
	}
	return nil
}

func (r *postLikeRepository) GetByID(ctx context.Context, id uint) (*models.PostLike, error) {
	var like models.PostLike
	if err := r.db.WithContext(ctx).First(&like, id).Error; err != nil {
		return nil, translateError(err, "post like", id)
	}
	return &like, nil
}

func (r *postLikeRepository) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.PostLike, error) {
	var like models.PostLike
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *postLikeRepository) List(ctx context.Context, p query.Params) ([]models.PostLike, error) {
	var likes []models.PostLike
	db := r.db.WithContext(ctx).Model(&models.PostLike{})
	if err := query.Apply(db, postLikeListSpec, p).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *postLikeRepository) Update(ctx context.Context, like *models.PostLike) error {
	// Save skips false with struct updates, so write the column explicitly.
	err := r.db.WithContext(ctx).Model(&models.PostLike{}).
		Where("id = ?", like.ID).
		Update("like", like.Like).Error
	if err != nil {
		return translateError(err, "post like", like.ID)
	}
	return nil
}

func (r *postLikeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PostLike{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("post like", id)
	}
	return nil
}

func (r *postLikeRepository) CountForPost(ctx context.Context, postID uint) (int64, error) {
	return CountRelated(ctx, r.db, &models.PostLike{}, "post_id", postID)
}

// CommentLikeRepository mirrors PostLikeRepository for comment reactions.
// The boolean is a tri-state: nil means recorded but undecided.
type CommentLikeRepository interface {
	Create(ctx context.Context, like *models.CommentLike) error
	GetByID(ctx context.Context, id uint) (*models.CommentLike, error)
	GetByUserAndComment(ctx context.Context, userID, commentID uint) (*models.CommentLike, error)
	List(ctx context.Context, p query.Params) ([]models.CommentLike, error)
	Update(ctx context.Context, like *models.CommentLike) error
	Delete(ctx context.Context, id uint) error
	CountForComment(ctx context.Context, commentID uint) (int64, error)
}

type commentLikeRepository struct {
	db *gorm.DB
}

// NewCommentLikeRepository creates a new comment like repository instance
func NewCommentLikeRepository(db *gorm.DB) CommentLikeRepository {
	return &commentLikeRepository{db: db}
}

var commentLikeListSpec = query.Spec{
	FilterColumns: map[string]string{
		"user_id":    "user_id",
		"comment_id": "comment_id",
	},
	SortColumns: []string{"id", "created_at"},
	DefaultSort: "id ASC",
}

func (r *commentLikeRepository) Create(ctx context.Context, like *models.CommentLike) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		return translateError(err, "comment like", like.CommentID)
	}
	return nil
}

func (r *commentLikeRepository) GetByID(ctx context.Context, id uint) (*models.CommentLike, error) {
	var like models.CommentLike
	if err := r.db.WithContext(ctx).First(&like, id).Error; err != nil {
		return nil, translateError(err, "comment like", id)
	}
	return &like, nil
}

func (r *commentLikeRepository) GetByUserAndComment(ctx context.Context, userID, commentID uint) (*models.CommentLike, error) {
	var like models.CommentLike
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		First(&like).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *commentLikeRepository) List(ctx context.Context, p query.Params) ([]models.CommentLike, error) {
	var likes []models.CommentLike
	db := r.db.WithContext(ctx).Model(&models.CommentLike{})
	if err := query.Apply(db, commentLikeListSpec, p).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *commentLikeRepository) Update(ctx context.Context, like *models.CommentLike) error {
	err := r.db.WithContext(ctx).Model(&models.CommentLike{}).
		Where("id = ?", like.ID).
		Update("like", like.Like).Error
	if err != nil {
		return translateError(err, "comment like", like.ID)
	}
	return nil
}

func (r *commentLikeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CommentLike{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("comment like", id)
	}
	return nil
}

func (r *commentLikeRepository) CountForComment(ctx context.Context, commentID uint) (int64, error) {
	return CountRelated(ctx, r.db, &models.CommentLike{}, "comment_id", commentID)
}
