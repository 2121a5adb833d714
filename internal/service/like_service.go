package service

import (
	"context"

	"lumagram/internal/cache"
	"lumagram/internal/models"
	"lumagram/internal/query"
	"lumagram/internal/repository"
)

// LikeService manages reaction records for posts and comments. A like is
// a mutable row keyed by (user, target): creating twice conflicts,
// changing your mind is an update, withdrawing entirely is a delete.
type LikeService struct {
	postLikeRepo    repository.PostLikeRepository
	commentLikeRepo repository.CommentLikeRepository
	postRepo        repository.PostRepository
	commentRepo     repository.CommentRepository
}

type RatePostInput struct {
	UserID uint
	PostID uint
	Like   bool
}

type UpdatePostLikeInput struct {
	UserID uint
	LikeID uint
	Like   bool
}

type RateCommentInput struct {
	UserID    uint
	CommentID uint
	Like      *bool
}

type UpdateCommentLikeInput struct {
	UserID uint
	LikeID uint
	Like   *bool
}

func NewLikeService(
	postLikeRepo repository.PostLikeRepository,
	commentLikeRepo repository.CommentLikeRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
) *LikeService {
	return &LikeService{
		postLikeRepo:    postLikeRepo,
		commentLikeRepo: commentLikeRepo,
		postRepo:        postRepo,
		commentRepo:     commentRepo,
	}
}

func (s *LikeService) RatePost(ctx context.Context, in RatePostInput) (*models.PostLike, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}
	if existing, err := s.postLikeRepo.GetByUserAndPost(ctx, in.UserID, in.PostID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("You have already rated this post")
	}

	like := &models.PostLike{UserID: in.UserID, PostID: in.PostID, Like: in.Like}
	if err := s.postLikeRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, in.PostID)
	return like, nil
}

func (s *LikeService) GetPostLike(ctx context.Context, id uint) (*models.PostLike, error) {
	return s.postLikeRepo.GetByID(ctx, id)
}

func (s *LikeService) ListPostLikes(ctx context.Context, p query.Params) ([]models.PostLike, error) {
	return s.postLikeRepo.List(ctx, p)
}

// UpdatePostLike flips the boolean in place, keeping the record's identity.
func (s *LikeService) UpdatePostLike(ctx context.Context, in UpdatePostLikeInput) (*models.PostLike, error) {
	like, err := s.postLikeRepo.GetByID(ctx, in.LikeID)
	if err != nil {
		return nil, err
	}
	if like.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only change your own likes")
	}

	like.Like = in.Like
	if err := s.postLikeRepo.Update(ctx, like); err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, like.PostID)
	return like, nil
}

func (s *LikeService) DeletePostLike(ctx context.Context, userID, likeID uint) error {
	like, err := s.postLikeRepo.GetByID(ctx, likeID)
	if err != nil {
		return err
	}
	if like.UserID != userID {
		return models.NewForbiddenError("You can only remove your own likes")
	}
	if err := s.postLikeRepo.Delete(ctx, likeID); err != nil {
		return err
	}
	cache.InvalidatePost(ctx, like.PostID)
	return nil
}

// RateComment records a reaction to a comment. The boolean is optional:
// nil marks the record without taking a side.
func (s *LikeService) RateComment(ctx context.Context, in RateCommentInput) (*models.CommentLike, error) {
	if _, err := s.commentRepo.GetByID(ctx, in.CommentID); err != nil {
		return nil, err
	}
	if existing, err := s.commentLikeRepo.GetByUserAndComment(ctx, in.UserID, in.CommentID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("You have already rated this comment")
	}

	like := &models.CommentLike{UserID: in.UserID, CommentID: in.CommentID, Like: in.Like}
	if err := s.commentLikeRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	return like, nil
}

func (s *LikeService) GetCommentLike(ctx context.Context, id uint) (*models.CommentLike, error) {
	return s.commentLikeRepo.GetByID(ctx, id)
}

func (s *LikeService) ListCommentLikes(ctx context.Context, p query.Params) ([]models.CommentLike, error) {
	return s.commentLikeRepo.List(ctx, p)
}

func (s *LikeService) UpdateCommentLike(ctx context.Context, in UpdateCommentLikeInput) (*models.CommentLike, error) {
	like, err := s.commentLikeRepo.GetByID(ctx, in.LikeID)
	if err != nil {
		return nil, err
	}
	if like.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only change your own likes")
	}

	like.Like = in.Like
	if err := s.commentLikeRepo.Update(ctx, like); err != nil {
		return nil, err
	}
	return like, nil
}

func (s *LikeService) DeleteCommentLike(ctx context.Context, userID, likeID uint) error {
	like, err := s.commentLikeRepo.GetByID(ctx, likeID)
	if err != nil {
		return err
	}
	if like.UserID != userID {
		return models.NewForbiddenError("You can only remove your own likes")
	}
	return s.commentLikeRepo.Delete(ctx, likeID)
}
