package repository

import (
	"context"

	"lumagram/internal/models"
	"lumagram/internal/query"

	"gorm.io/gorm"
)

// StoryRepository defines the interface for story data operations
type StoryRepository interface {
	Create(ctx context.Context, story *models.Story) error
	GetByID(ctx context.Context, id uint) (*models.Story, error)
	List(ctx context.Context, p query.Params) ([]models.Story, error)
	ListByOwner(ctx context.Context, ownerID uint, p query.Params) ([]models.Story, error)
	Update(ctx context.Context, story *models.Story) error
	Delete(ctx context.Context, id uint) error
}

type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository creates a new story repository instance
func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

var storyListSpec = query.Spec{
	FilterColumns: map[string]string{"user_id": "user_id"},
	SortColumns:   []string{"id", "created_at"},
	DefaultSort:   "created_at DESC",
}

func (r *storyRepository) Create(ctx context.Context, story *models.Story) error {
	if err := r.db.WithContext(ctx).Create(story).Error; err != nil {
		return translateError(err, "story", story.UserID)
	}
	return nil
}

func (r *storyRepository) GetByID(ctx context.Context, id uint) (*models.Story, error) {
	var story models.Story
	if err := r.db.WithContext(ctx).Preload("User").First(&story, id).Error; err != nil {
		return nil, translateError(err, "story", id)
	}
	return &story, nil
}

func (r *storyRepository) List(ctx context.Context, p query.Params) ([]models.Story, error) {
	var stories []models.Story
	db := r.db.WithContext(ctx).Model(&models.Story{})
	if err := query.Apply(db, storyListSpec, p).Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *storyRepository) ListByOwner(ctx context.Context, ownerID uint, p query.Params) ([]models.Story, error) {
	var stories []models.Story
	db := r.db.WithContext(ctx).Model(&models.Story{}).Where("user_id = ?", ownerID)
	if err := query.Apply(db, storyListSpec, p).Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *storyRepository) Update(ctx context.Context, story *models.Story) error {
	if err := r.db.WithContext(ctx).Save(story).Error; err != nil {
		return translateError(err, "story", story.ID)
	}
	return nil
}

func (r *storyRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Story{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("story", id)
	}
	return nil
}
