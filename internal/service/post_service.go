package service

import (
	"context"
	"strings"

	"lumagram/internal/cache"
	"lumagram/internal/models"
	"lumagram/internal/query"
	"lumagram/internal/repository"
)

const maxDescriptionLen = 2200

type PostService struct {
	postRepo    repository.PostRepository
	hashtagRepo repository.HashtagRepository
}

type CreatePostInput struct {
	UserID      uint
	ImageURL    string
	VideoURL    string
	Description string
	HashtagID   uint
}

type UpdatePostInput struct {
	UserID      uint
	PostID      uint
	ImageURL    *string
	VideoURL    *string
	Description *string
	HashtagID   *uint
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository, hashtagRepo repository.HashtagRepository) *PostService {
	return &PostService{postRepo: postRepo, hashtagRepo: hashtagRepo}
}

// CreatePost publishes a post for the calling user. The hashtag is
// mandatory and must exist; authorship always comes from the caller, never
// from the payload.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.HashtagID == 0 {
		return nil, models.NewValidationError("Hashtag is required")
	}
	if _, err := s.hashtagRepo.GetByID(ctx, in.HashtagID); err != nil {
		return nil, err
	}
	if len(in.Description) > maxDescriptionLen {
		return nil, models.NewValidationError("Description too long (max 2200 characters)")
	}

	post := &models.Post{
		UserID:      in.UserID,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		VideoURL:    strings.TrimSpace(in.VideoURL),
		Description: in.Description,
		HashtagID:   in.HashtagID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost serves post detail through the cache.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		p, err := s.postRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		post = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) ListPosts(ctx context.Context, p query.Params) ([]models.Post, error) {
	return s.postRepo.List(ctx, p)
}

// ListOwnPosts returns the caller's posts, newest filters still apply.
func (s *PostService) ListOwnPosts(ctx context.Context, userID uint, p query.Params) ([]models.Post, error) {
	return s.postRepo.ListByOwner(ctx, userID, p)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	if in.ImageURL != nil {
		post.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.VideoURL != nil {
		post.VideoURL = strings.TrimSpace(*in.VideoURL)
	}
	if in.Description != nil {
		if len(*in.Description) > maxDescriptionLen {
			return nil, models.NewValidationError("Description too long (max 2200 characters)")
		}
		post.Description = *in.Description
	}
	if in.HashtagID != nil {
		if *in.HashtagID == 0 {
			return nil, models.NewValidationError("Hashtag is required")
		}
		if _, err := s.hashtagRepo.GetByID(ctx, *in.HashtagID); err != nil {
			return nil, err
		}
		post.HashtagID = *in.HashtagID
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, post.ID)
	return s.postRepo.GetByID(ctx, post.ID)
}

// DeletePost removes a post and everything hanging off it: comments,
// like records and saved-collection entries.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}
	if post.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	if err := s.postRepo.Delete(ctx, in.PostID); err != nil {
		return err
	}
	cache.InvalidatePost(ctx, in.PostID)
	return nil
}
