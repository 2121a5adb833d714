package repository

import (
	"context"

	"lumagram/internal/models"
	"lumagram/internal/query"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow edge operations
type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	GetByID(ctx context.Context, id uint) (*models.Follow, error)
	List(ctx context.Context, p query.Params) ([]models.Follow, error)
	Update(ctx context.Context, follow *models.Follow) error
	Delete(ctx context.Context, id uint) error
	CountFollowers(ctx context.Context, userID uint) (int64, error)
	CountFollowing(ctx context.Context, userID uint) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository instance
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

var followListSpec = query.Spec{
	FilterColumns: map[string]string{
		"follower_id":  "follower_id",
		"following_id": "following_id",
	},
	SortColumns: []string{"id", "created_at"},
	DefaultSort: "id ASC",
}

func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		return translateError(err, "follow", follow.FollowingID)
	}
	return nil
}

func (r *followRepository) GetByID(ctx context.Context, id uint) (*models.Follow, error) {
	var follow models.Follow
	err := r.db.WithContext(ctx).
		Preload("Follower").
		Preload("Following").
		First(&follow, id).Error
	if err != nil {
		return nil, translateError(err, "follow", id)
	}
	return &follow, nil
}

// List returns follow edges system-wide; visibility is not scoped to the
// caller because follower/following lists are public.
func (r *followRepository) List(ctx context.Context, p query.Params) ([]models.Follow, error) {
	var follows []models.Follow
	db := r.db.WithContext(ctx).Model(&models.Follow{}).
		Preload("Follower").
		Preload("Following")
	if err := query.Apply(db, followListSpec, p).Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}

func (r *followRepository) Update(ctx context.Context, follow *models.Follow) error {
	if err := r.db.WithContext(ctx).Save(follow).Error; err != nil {
		return translateError(err, "follow", follow.ID)
	}
	return nil
}

func (r *followRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Follow{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("follow", id)
	}
	return nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return CountRelated(ctx, r.db, &models.Follow{}, "following_id", userID)
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return CountRelated(ctx, r.db, &models.Follow{}, "follower_id", userID)
}
