package service

import (
	"context"
	"testing"

	"lumagram/internal/models"
	"lumagram/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postLikeRepoStub is a stub for repository.PostLikeRepository.
type postLikeRepoStub struct {
	createFn           func(context.Context, *models.PostLike) error
	getByIDFn          func(context.Context, uint) (*models.PostLike, error)
	getByUserAndPostFn func(context.Context, uint, uint) (*models.PostLike, error)
	listFn             func(context.Context, query.Params) ([]models.PostLike, error)
	updateFn           func(context.Context, *models.PostLike) error
	deleteFn           func(context.Context, uint) error
	countForPostFn     func(context.Context, uint) (int64, error)
}

func (s *postLikeRepoStub) Create(ctx context.Context, l *models.PostLike) error {
	return s.createFn(ctx, l)
}
func (s *postLikeRepoStub) GetByID(ctx context.Context, id uint) (*models.PostLike, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postLikeRepoStub) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.PostLike, error) {
	return s.getByUserAndPostFn(ctx, userID, postID)
}
func (s *postLikeRepoStub) List(ctx context.Context, p query.Params) ([]models.PostLike, error) {
	return s.listFn(ctx, p)
}
func (s *postLikeRepoStub) Update(ctx context.Context, l *models.PostLike) error {
	return s.updateFn(ctx, l)
}
func (s *postLikeRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postLikeRepoStub) CountForPost(ctx context.Context, postID uint) (int64, error) {
	return s.countForPostFn(ctx, postID)
}

func noopPostLikeRepo() *postLikeRepoStub {
	return &postLikeRepoStub{
		createFn: func(_ context.Context, _ *models.PostLike) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.PostLike, error) {
			return &models.PostLike{ID: id}, nil
		},
		getByUserAndPostFn: func(_ context.Context, _, _ uint) (*models.PostLike, error) {
			return nil, nil
		},
		listFn:         func(_ context.Context, _ query.Params) ([]models.PostLike, error) { return nil, nil },
		updateFn:       func(_ context.Context, _ *models.PostLike) error { return nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
		countForPostFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// commentLikeRepoStub is a stub for repository.CommentLikeRepository.
type commentLikeRepoStub struct {
	createFn              func(context.Context, *models.CommentLike) error
	getByIDFn             func(context.Context, uint) (*models.CommentLike, error)
	getByUserAndCommentFn func(context.Context, uint, uint) (*models.CommentLike, error)
	listFn                func(context.Context, query.Params) ([]models.CommentLike, error)
	updateFn              func(context.Context, *models.CommentLike) error
	deleteFn              func(context.Context, uint) error
	countForCommentFn     func(context.Context, uint) (int64, error)
}

func (s *commentLikeRepoStub) Create(ctx context.Context, l *models.CommentLike) error {
	return s.createFn(ctx, l)
}
func (s *commentLikeRepoStub) GetByID(ctx context.Context, id uint) (*models.CommentLike, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentLikeRepoStub) GetByUserAndComment(ctx context.Context, userID, commentID uint) (*models.CommentLike, error) {
	return s.getByUserAndCommentFn(ctx, userID, commentID)
}
func (s *commentLikeRepoStub) List(ctx context.Context, p query.Params) ([]models.CommentLike, error) {
	return s.listFn(ctx, p)
}
func (s *commentLikeRepoStub) Update(ctx context.Context, l *models.CommentLike) error {
	return s.updateFn(ctx, l)
}
func (s *commentLikeRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentLikeRepoStub) CountForComment(ctx context.Context, commentID uint) (int64, error) {
	return s.countForCommentFn(ctx, commentID)
}

func noopCommentLikeRepo() *commentLikeRepoStub {
	return &commentLikeRepoStub{
		createFn: func(_ context.Context, _ *models.CommentLike) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.CommentLike, error) {
			return &models.CommentLike{ID: id}, nil
		},
		getByUserAndCommentFn: func(_ context.Context, _, _ uint) (*models.CommentLike, error) {
			return nil, nil
		},
		listFn:            func(_ context.Context, _ query.Params) ([]models.CommentLike, error) { return nil, nil },
		updateFn:          func(_ context.Context, _ *models.CommentLike) error { return nil },
		deleteFn:          func(_ context.Context, _ uint) error { return nil },
		countForCommentFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

func newLikeService(pl *postLikeRepoStub, cl *commentLikeRepoStub) *LikeService {
	return NewLikeService(pl, cl, noopPostRepo(), noopCommentRepo())
}

func TestLikeService_RatePost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("second rating conflicts", func(t *testing.T) {
		t.Parallel()
		likeRepo := noopPostLikeRepo()
		likeRepo.getByUserAndPostFn = func(_ context.Context, userID, postID uint) (*models.PostLike, error) {
			return &models.PostLike{ID: 1, UserID: userID, PostID: postID, Like: true}, nil
		}
		svc := newLikeService(likeRepo, noopCommentLikeRepo())
		_, err := svc.RatePost(ctx, RatePostInput{UserID: 1, PostID: 2, Like: false})
		assertConflictError(t, err)
	})

	t.Run("dislike is a stored record too", func(t *testing.T) {
		t.Parallel()
		likeRepo := noopPostLikeRepo()
		likeRepo.createFn = func(_ context.Context, l *models.PostLike) error {
			l.ID = 10
			return nil
		}
		svc := newLikeService(likeRepo, noopCommentLikeRepo())
		like, err := svc.RatePost(ctx, RatePostInput{UserID: 1, PostID: 2, Like: false})
		require.NoError(t, err)
		assert.False(t, like.Like)
	})
}

func TestLikeService_UpdatePostLike(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	likeRepo := noopPostLikeRepo()
	likeRepo.getByIDFn = func(_ context.Context, id uint) (*models.PostLike, error) {
		return &models.PostLike{ID: id, UserID: 1, PostID: 2, Like: true}, nil
	}
	svc := newLikeService(likeRepo, noopCommentLikeRepo())

	t.Run("stranger cannot flip", func(t *testing.T) {
		t.Parallel()
		_, err := svc.UpdatePostLike(ctx, UpdatePostLikeInput{UserID: 9, LikeID: 1, Like: false})
		assertForbiddenError(t, err)
	})

	t.Run("owner flips in place", func(t *testing.T) {
		t.Parallel()
		like, err := svc.UpdatePostLike(ctx, UpdatePostLikeInput{UserID: 1, LikeID: 1, Like: false})
		require.NoError(t, err)
		assert.False(t, like.Like)
		assert.Equal(t, uint(1), like.ID)
	})
}

func TestLikeService_RateComment_Undecided(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	likeRepo := noopCommentLikeRepo()
	var created *models.CommentLike
	likeRepo.createFn = func(_ context.Context, l *models.CommentLike) error {
		l.ID = 3
		created = l
		return nil
	}
	svc := newLikeService(noopPostLikeRepo(), likeRepo)

	// A nil boolean records the reaction without taking a side.
	like, err := svc.RateComment(ctx, RateCommentInput{UserID: 1, CommentID: 2, Like: nil})
	require.NoError(t, err)
	assert.Nil(t, like.Like)
	assert.Equal(t, created, like)
}
