package repository

import (
	"context"

	"lumagram/internal/models"
	"lumagram/internal/query"

	"gorm.io/gorm"
)

// SavedRepository manages per-user saved collections and their items.
type SavedRepository interface {
	GetOrCreateForUser(ctx context.Context, userID uint) (*models.Saved, error)
	GetByID(ctx context.Context, id uint) (*models.Saved, error)
	List(ctx context.Context, p query.Params) ([]models.Saved, error)
	Delete(ctx context.Context, id uint) error

	AddItem(ctx context.Context, item *models.SaveItem) error
	GetItem(ctx context.Context, id uint) (*models.SaveItem, error)
	ListItems(ctx context.Context, savedID uint, p query.Params) ([]models.SaveItem, error)
	DeleteItem(ctx context.Context, id uint) error
}

type savedRepository struct {
	db *gorm.DB
}

// NewSavedRepository creates a new saved collection repository instance
func NewSavedRepository(db *gorm.DB) SavedRepository {
	return &savedRepository{db: db}
}

var savedListSpec = query.Spec{
	FilterColumns: map[string]string{"user_id": "user_id"},
	SortColumns:   []string{"id", "created_at"},
	DefaultSort:   "id ASC",
}

var saveItemListSpec = query.Spec{
	FilterColumns: map[string]string{
		"post_id":  "post_id",
		"saved_id": "saved_id",
	},
	SortColumns: []string{"id", "created_at"},
	DefaultSort: "id ASC",
}

// GetOrCreateForUser returns the user's collection, creating it lazily on
// first save.
func (r *savedRepository) GetOrCreateForUser(ctx context.Context, userID uint) (*models.Saved, error) {
	var saved models.Saved
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&saved).Error
	if err == nil {
		return &saved, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	saved = models.Saved{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&saved).Error; err != nil {
		return nil, translateError(err, "saved collection", userID)
	}
	return &saved, nil
}

func (r *savedRepository) GetByID(ctx context.Context, id uint) (*models.Saved, error) {
	var saved models.Saved
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Post").
		First(&saved, id).Error
	if err != nil {
		return nil, translateError(err, "saved collection", id)
	}
	return &saved, nil
}

func (r *savedRepository) List(ctx context.Context, p query.Params) ([]models.Saved, error) {
	var collections []models.Saved
	db := r.db.WithContext(ctx).Model(&models.Saved{}).Preload("Items")
	if err := query.Apply(db, savedListSpec, p).Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *savedRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Saved{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("saved collection", id)
	}
	return nil
}

func (r *savedRepository) AddItem(ctx context.Context, item *models.SaveItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return translateError(err, "saved item", item.PostID)
	}
	return nil
}

func (r *savedRepository) GetItem(ctx context.Context, id uint) (*models.SaveItem, error) {
	var item models.SaveItem
	if err := r.db.WithContext(ctx).Preload("Post").First(&item, id).Error; err != nil {
		return nil, translateError(err, "saved item", id)
	}
	return &item, nil
}

func (r *savedRepository) ListItems(ctx context.Context, savedID uint, p query.Params) ([]models.SaveItem, error) {
	var items []models.SaveItem
	db := r.db.WithContext(ctx).Model(&models.SaveItem{}).
		Preload("Post").
		Where("saved_id = ?", savedID)
	if err := query.Apply(db, saveItemListSpec, p).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *savedRepository) DeleteItem(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SaveItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("saved item", id)
	}
	return nil
}
