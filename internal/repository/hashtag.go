package repository

import (
	"context"

	"lumagram/internal/models"
	"lumagram/internal/query"

	"gorm.io/gorm"
)

// HashtagRepository defines the interface for hashtag operations
type HashtagRepository interface {
	Create(ctx context.Context, hashtag *models.Hashtag) error
	GetByID(ctx context.Context, id uint) (*models.Hashtag, error)
	GetByTag(ctx context.Context, tag string) (*models.Hashtag, error)
	List(ctx context.Context, p query.Params) ([]models.Hashtag, error)
	Update(ctx context.Context, hashtag *models.Hashtag) error
	Delete(ctx context.Context, id uint) error
}

type hashtagRepository struct {
	db *gorm.DB
}

// NewHashtagRepository creates a new hashtag repository instance
func NewHashtagRepository(db *gorm.DB) HashtagRepository {
	return &hashtagRepository{db: db}
}

var hashtagListSpec = query.Spec{
	FilterColumns: map[string]string{"tag": "tag"},
	SearchColumn:  "tag",
	SortColumns:   []string{"id", "tag"},
	DefaultSort:   "id ASC",
}

func (r *hashtagRepository) Create(ctx context.Context, hashtag *models.Hashtag) error {
	if err := r.db.WithContext(ctx).Create(hashtag).Error; err != nil {
		return translateError(err, "hashtag", hashtag.Tag)
	}
	return nil
}

func (r *hashtagRepository) GetByID(ctx context.Context, id uint) (*models.Hashtag, error) {
	var hashtag models.Hashtag
	if err := r.db.WithContext(ctx).First(&hashtag, id).Error; err != nil {
		return nil, translateError(err, "hashtag", id)
	}
	return &hashtag, nil
}

func (r *hashtagRepository) GetByTag(ctx context.Context, tag string) (*models.Hashtag, error) {
	var hashtag models.Hashtag
	err := r.db.WithContext(ctx).Where("tag = ?", tag).First(&hashtag).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hashtag, nil
}

func (r *hashtagRepository) List(ctx context.Context, p query.Params) ([]models.Hashtag, error) {
	var hashtags []models.Hashtag
	db := r.db.WithContext(ctx).Model(&models.Hashtag{})
	if err := query.Apply(db, hashtagListSpec, p).Find(&hashtags).Error; err != nil {
		return nil, err
	}
	return hashtags, nil
}

func (r *hashtagRepository) Update(ctx context.Context, hashtag *models.Hashtag) error {
	if err := r.db.WithContext(ctx).Save(hashtag).Error; err != nil {
		return translateError(err, "hashtag", hashtag.ID)
	}
	return nil
}

func (r *hashtagRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Hashtag{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("hashtag", id)
	}
	return nil
}
