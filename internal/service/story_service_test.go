package service

import (
	"context"
	"testing"

	"lumagram/internal/models"
	"lumagram/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storyRepoStub is a stub for repository.StoryRepository.
type storyRepoStub struct {
	createFn      func(context.Context, *models.Story) error
	getByIDFn     func(context.Context, uint) (*models.Story, error)
	listFn        func(context.Context, query.Params) ([]models.Story, error)
	listByOwnerFn func(context.Context, uint, query.Params) ([]models.Story, error)
	updateFn      func(context.Context, *models.Story) error
	deleteFn      func(context.Context, uint) error
}

func (s *storyRepoStub) Create(ctx context.Context, story *models.Story) error {
	return s.createFn(ctx, story)
}
func (s *storyRepoStub) GetByID(ctx context.Context, id uint) (*models.Story, error) {
	return s.getByIDFn(ctx, id)
}
func (s *storyRepoStub) List(ctx context.Context, p query.Params) ([]models.Story, error) {
	return s.listFn(ctx, p)
}
func (s *storyRepoStub) ListByOwner(ctx context.Context, ownerID uint, p query.Params) ([]models.Story, error) {
	return s.listByOwnerFn(ctx, ownerID, p)
}
func (s *storyRepoStub) Update(ctx context.Context, story *models.Story) error {
	return s.updateFn(ctx, story)
}
func (s *storyRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopStoryRepo() *storyRepoStub {
	return &storyRepoStub{
		createFn: func(_ context.Context, _ *models.Story) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Story, error) {
			return &models.Story{ID: id, UserID: 1, ImageURL: "img.jpg"}, nil
		},
		listFn:        func(_ context.Context, _ query.Params) ([]models.Story, error) { return nil, nil },
		listByOwnerFn: func(_ context.Context, _ uint, _ query.Params) ([]models.Story, error) { return nil, nil },
		updateFn:      func(_ context.Context, _ *models.Story) error { return nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

func TestStoryService_CreateStory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewStoryService(noopStoryRepo())

	t.Run("needs media", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateStory(ctx, CreateStoryInput{UserID: 1})
		assertValidationError(t, err)
	})

	t.Run("video only is enough", func(t *testing.T) {
		t.Parallel()
		story, err := svc.CreateStory(ctx, CreateStoryInput{UserID: 1, VideoURL: "clip.mp4"})
		require.NoError(t, err)
		assert.Equal(t, "clip.mp4", story.VideoURL)
	})
}

func TestStoryService_Ownership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewStoryService(noopStoryRepo())
	img := "new.jpg"

	t.Run("stranger cannot update", func(t *testing.T) {
		t.Parallel()
		_, err := svc.UpdateStory(ctx, UpdateStoryInput{UserID: 2, StoryID: 1, ImageURL: &img})
		assertForbiddenError(t, err)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		t.Parallel()
		err := svc.DeleteStory(ctx, 2, 1)
		assertForbiddenError(t, err)
	})

	t.Run("owner updates", func(t *testing.T) {
		t.Parallel()
		story, err := svc.UpdateStory(ctx, UpdateStoryInput{UserID: 1, StoryID: 1, ImageURL: &img})
		require.NoError(t, err)
		assert.Equal(t, "new.jpg", story.ImageURL)
	})

	t.Run("cannot strip all media", func(t *testing.T) {
		t.Parallel()
		empty := ""
		_, err := svc.UpdateStory(ctx, UpdateStoryInput{UserID: 1, StoryID: 1, ImageURL: &empty})
		assertValidationError(t, err)
	})
}
