package service

import (
	"context"

	"lumagram/internal/models"
	"lumagram/internal/query"
	"lumagram/internal/repository"
)

type SavedService struct {
	savedRepo repository.SavedRepository
	postRepo  repository.PostRepository
}

type SavePostInput struct {
	UserID uint
	PostID uint
}

func NewSavedService(savedRepo repository.SavedRepository, postRepo repository.PostRepository) *SavedService {
	return &SavedService{savedRepo: savedRepo, postRepo: postRepo}
}

// GetCollection returns the caller's saved collection with its items,
// creating the collection on first access.
func (s *SavedService) GetCollection(ctx context.Context, userID uint) (*models.Saved, error) {
	saved, err := s.savedRepo.GetOrCreateForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.savedRepo.GetByID(ctx, saved.ID)
}

// SavePost puts a post into the caller's collection.
func (s *SavedService) SavePost(ctx context.Context, in SavePostInput) (*models.SaveItem, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}
	saved, err := s.savedRepo.GetOrCreateForUser(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	item := &models.SaveItem{PostID: in.PostID, SavedID: saved.ID}
	if err := s.savedRepo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return s.savedRepo.GetItem(ctx, item.ID)
}

func (s *SavedService) ListItems(ctx context.Context, userID uint, p query.Params) ([]models.SaveItem, error) {
	saved, err := s.savedRepo.GetOrCreateForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.savedRepo.ListItems(ctx, saved.ID, p)
}

// RemoveItem takes a post back out of the caller's collection. The item
// must belong to a collection the caller owns.
func (s *SavedService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	item, err := s.savedRepo.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	collection, err := s.savedRepo.GetByID(ctx, item.SavedID)
	if err != nil {
		return err
	}
	if collection.UserID != userID {
		return models.NewForbiddenError("You can only remove items from your own collection")
	}
	return s.savedRepo.DeleteItem(ctx, itemID)
}
