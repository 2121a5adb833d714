package service

import (
	"context"
	"strings"
	"testing"

	"lumagram/internal/models"
	"lumagram/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hashtagRepoStub is a stub for repository.HashtagRepository.
type hashtagRepoStub struct {
	createFn   func(context.Context, *models.Hashtag) error
	getByIDFn  func(context.Context, uint) (*models.Hashtag, error)
	getByTagFn func(context.Context, string) (*models.Hashtag, error)
	listFn     func(context.Context, query.Params) ([]models.Hashtag, error)
	updateFn   func(context.Context, *models.Hashtag) error
	deleteFn   func(context.Context, uint) error
}

func (s *hashtagRepoStub) Create(ctx context.Context, h *models.Hashtag) error {
	return s.createFn(ctx, h)
}
func (s *hashtagRepoStub) GetByID(ctx context.Context, id uint) (*models.Hashtag, error) {
	return s.getByIDFn(ctx, id)
}
func (s *hashtagRepoStub) GetByTag(ctx context.Context, tag string) (*models.Hashtag, error) {
	return s.getByTagFn(ctx, tag)
}
func (s *hashtagRepoStub) List(ctx context.Context, p query.Params) ([]models.Hashtag, error) {
	return s.listFn(ctx, p)
}
func (s *hashtagRepoStub) Update(ctx context.Context, h *models.Hashtag) error {
	return s.updateFn(ctx, h)
}
func (s *hashtagRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopHashtagRepo() *hashtagRepoStub {
	return &hashtagRepoStub{
		createFn: func(_ context.Context, _ *models.Hashtag) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Hashtag, error) {
			return &models.Hashtag{ID: id, Tag: "travel"}, nil
		},
		getByTagFn: func(_ context.Context, _ string) (*models.Hashtag, error) { return nil, nil },
		listFn:     func(_ context.Context, _ query.Params) ([]models.Hashtag, error) { return nil, nil },
		updateFn:   func(_ context.Context, _ *models.Hashtag) error { return nil },
		deleteFn:   func(_ context.Context, _ uint) error { return nil },
	}
}

func TestHashtagService_CreateHashtag(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("tag is trimmed and required", func(t *testing.T) {
		t.Parallel()
		svc := NewHashtagService(noopHashtagRepo())
		_, err := svc.CreateHashtag(ctx, "   ")
		assertValidationError(t, err)
	})

	t.Run("tag length is bounded", func(t *testing.T) {
		t.Parallel()
		svc := NewHashtagService(noopHashtagRepo())
		_, err := svc.CreateHashtag(ctx, strings.Repeat("a", 101))
		assertValidationError(t, err)
	})

	t.Run("existing tag is a conflict", func(t *testing.T) {
		t.Parallel()
		repo := noopHashtagRepo()
		repo.getByTagFn = func(_ context.Context, tag string) (*models.Hashtag, error) {
			return &models.Hashtag{ID: 1, Tag: tag}, nil
		}
		svc := NewHashtagService(repo)
		_, err := svc.CreateHashtag(ctx, "travel")
		assertConflictError(t, err)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo := noopHashtagRepo()
		repo.createFn = func(_ context.Context, h *models.Hashtag) error {
			h.ID = 7
			return nil
		}
		svc := NewHashtagService(repo)
		hashtag, err := svc.CreateHashtag(ctx, "  sunset ")
		require.NoError(t, err)
		assert.Equal(t, uint(7), hashtag.ID)
		assert.Equal(t, "sunset", hashtag.Tag)
	})
}

func TestHashtagService_UpdateHashtag(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := noopHashtagRepo()
	svc := NewHashtagService(repo)

	hashtag, err := svc.UpdateHashtag(ctx, 3, "beach")
	require.NoError(t, err)
	assert.Equal(t, "beach", hashtag.Tag)

	_, err = svc.UpdateHashtag(ctx, 3, "")
	assertValidationError(t, err)
}
