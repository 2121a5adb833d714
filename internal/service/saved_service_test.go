package service

import (
	"context"
	"testing"

	"lumagram/internal/models"
	"lumagram/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// savedRepoStub is a stub for repository.SavedRepository.
type savedRepoStub struct {
	getOrCreateForUserFn func(context.Context, uint) (*models.Saved, error)
	getByIDFn            func(context.Context, uint) (*models.Saved, error)
	listFn               func(context.Context, query.Params) ([]models.Saved, error)
	deleteFn             func(context.Context, uint) error
	addItemFn            func(context.Context, *models.SaveItem) error
	getItemFn            func(context.Context, uint) (*models.SaveItem, error)
	listItemsFn          func(context.Context, uint, query.Params) ([]models.SaveItem, error)
	deleteItemFn         func(context.Context, uint) error
}

func (s *savedRepoStub) GetOrCreateForUser(ctx context.Context, userID uint) (*models.Saved, error) {
	return s.getOrCreateForUserFn(ctx, userID)
}
func (s *savedRepoStub) GetByID(ctx context.Context, id uint) (*models.Saved, error) {
	return s.getByIDFn(ctx, id)
}
func (s *savedRepoStub) List(ctx context.Context, p query.Params) ([]models.Saved, error) {
	return s.listFn(ctx, p)
}
func (s *savedRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *savedRepoStub) AddItem(ctx context.Context, item *models.SaveItem) error {
	return s.addItemFn(ctx, item)
}
func (s *savedRepoStub) GetItem(ctx context.Context, id uint) (*models.SaveItem, error) {
	return s.getItemFn(ctx, id)
}
func (s *savedRepoStub) ListItems(ctx context.Context, savedID uint, p query.Params) ([]models.SaveItem, error) {
	return s.listItemsFn(ctx, savedID, p)
}
func (s *savedRepoStub) DeleteItem(ctx context.Context, id uint) error {
	return s.deleteItemFn(ctx, id)
}

func noopSavedRepo() *savedRepoStub {
	return &savedRepoStub{
		getOrCreateForUserFn: func(_ context.Context, userID uint) (*models.Saved, error) {
			return &models.Saved{ID: 1, UserID: userID}, nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Saved, error) {
			return &models.Saved{ID: id, UserID: 1}, nil
		},
		listFn:   func(_ context.Context, _ query.Params) ([]models.Saved, error) { return nil, nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
		addItemFn: func(_ context.Context, _ *models.SaveItem) error {
			return nil
		},
		getItemFn: func(_ context.Context, id uint) (*models.SaveItem, error) {
			return &models.SaveItem{ID: id, SavedID: 1, PostID: 2}, nil
		},
		listItemsFn:  func(_ context.Context, _ uint, _ query.Params) ([]models.SaveItem, error) { return nil, nil },
		deleteItemFn: func(_ context.Context, _ uint) error { return nil },
	}
}

func TestSavedService_SavePost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("post must exist", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("post", id)
		}
		svc := NewSavedService(noopSavedRepo(), postRepo)
		_, err := svc.SavePost(ctx, SavePostInput{UserID: 1, PostID: 99})
		assertAppErrorCode(t, err, "NOT_FOUND")
	})

	t.Run("item lands in the caller's collection", func(t *testing.T) {
		t.Parallel()
		savedRepo := noopSavedRepo()
		savedRepo.getOrCreateForUserFn = func(_ context.Context, userID uint) (*models.Saved, error) {
			return &models.Saved{ID: 40, UserID: userID}, nil
		}
		var added *models.SaveItem
		savedRepo.addItemFn = func(_ context.Context, item *models.SaveItem) error {
			item.ID = 3
			added = item
			return nil
		}
		svc := NewSavedService(savedRepo, noopPostRepo())
		_, err := svc.SavePost(ctx, SavePostInput{UserID: 1, PostID: 2})
		require.NoError(t, err)
		assert.Equal(t, uint(40), added.SavedID)
		assert.Equal(t, uint(2), added.PostID)
	})
}

func TestSavedService_RemoveItem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewSavedService(noopSavedRepo(), noopPostRepo())

	t.Run("stranger cannot unsave", func(t *testing.T) {
		t.Parallel()
		err := svc.RemoveItem(ctx, 2, 5)
		assertForbiddenError(t, err)
	})

	t.Run("owner unsaves", func(t *testing.T) {
		t.Parallel()
		err := svc.RemoveItem(ctx, 1, 5)
		assert.NoError(t, err)
	})
}
