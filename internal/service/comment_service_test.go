package service

import (
	"context"
	"strings"
	"testing"

	"lumagram/internal/cache"
	"lumagram/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_CreateComment_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopPostRepo())
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 1})
		assertValidationError(t, err)
	})

	t.Run("text too long", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopPostRepo())
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			UserID: 1,
			PostID: 1,
			Text:   strings.Repeat("x", 10001),
		})
		assertValidationError(t, err)
	})

	t.Run("post not found propagates", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("post", id)
		}
		svc := NewCommentService(noopCommentRepo(), postRepo)
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 99, Text: "hi"})
		assertAppErrorCode(t, err, "NOT_FOUND")
	})
}

func TestCommentService_CreateComment_Replies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parentID := uint(7)

	t.Run("parent on another post rejected", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: 2}, nil
		}
		svc := NewCommentService(commentRepo, noopPostRepo())
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			UserID:   1,
			PostID:   1,
			Text:     "reply",
			ParentID: &parentID,
		})
		assertValidationError(t, err)
	})

	t.Run("reply on same post succeeds", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: 1, ParentID: &parentID}, nil
		}
		commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
			c.ID = 42
			return nil
		}
		svc := NewCommentService(commentRepo, noopPostRepo())
		comment, err := svc.CreateComment(ctx, CreateCommentInput{
			UserID:   1,
			PostID:   1,
			Text:     "reply",
			ParentID: &parentID,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), comment.PostID)
	})
}

func TestCommentService_OwnershipChecks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 1, PostID: 1, Text: "original"}, nil
	}
	svc := NewCommentService(commentRepo, noopPostRepo())

	t.Run("update by stranger forbidden", func(t *testing.T) {
		t.Parallel()
		_, err := svc.UpdateComment(ctx, UpdateCommentInput{UserID: 2, CommentID: 1, Text: "edit"})
		assertForbiddenError(t, err)
	})

	t.Run("delete by stranger forbidden", func(t *testing.T) {
		t.Parallel()
		err := svc.DeleteComment(ctx, DeleteCommentInput{UserID: 2, CommentID: 1})
		assertForbiddenError(t, err)
	})

	t.Run("owner may update", func(t *testing.T) {
		t.Parallel()
		_, err := svc.UpdateComment(ctx, UpdateCommentInput{UserID: 1, CommentID: 1, Text: "edit"})
		assert.NoError(t, err)
	})
}

// A cached post detail embeds comments_count, so comment writes must
// drop the cached entry the same way like writes do.
func TestCommentService_InvalidatesCachedPost(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 1, PostID: 5, Text: "hi"}, nil
	}
	svc := NewCommentService(commentRepo, noopPostRepo())

	seed := func() {
		require.NoError(t, cache.SetJSON(ctx, cache.PostKey(5), &models.Post{ID: 5}, cache.PostTTL))
		require.True(t, mr.Exists(cache.PostKey(5)))
	}

	seed()
	_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 5, Text: "hi"})
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.PostKey(5)), "create must drop the cached post")

	seed()
	require.NoError(t, svc.DeleteComment(ctx, DeleteCommentInput{UserID: 1, CommentID: 9}))
	assert.False(t, mr.Exists(cache.PostKey(5)), "delete must drop the cached post")
}
