package service

import (
	"context"
	"strings"

	"lumagram/internal/models"
	"lumagram/internal/query"
	"lumagram/internal/repository"
)

type StoryService struct {
	storyRepo repository.StoryRepository
}

type CreateStoryInput struct {
	UserID   uint
	ImageURL string
	VideoURL string
}

type UpdateStoryInput struct {
	UserID   uint
	StoryID  uint
	ImageURL *string
	VideoURL *string
}

func NewStoryService(storyRepo repository.StoryRepository) *StoryService {
	return &StoryService{storyRepo: storyRepo}
}

// CreateStory publishes an ephemeral media item. At least one media
// reference is required, a story with nothing to show is meaningless.
func (s *StoryService) CreateStory(ctx context.Context, in CreateStoryInput) (*models.Story, error) {
	image := strings.TrimSpace(in.ImageURL)
	video := strings.TrimSpace(in.VideoURL)
	if image == "" && video == "" {
		return nil, models.NewValidationError("An image or video is required")
	}

	story := &models.Story{UserID: in.UserID, ImageURL: image, VideoURL: video}
	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *StoryService) GetStory(ctx context.Context, id uint) (*models.Story, error) {
	return s.storyRepo.GetByID(ctx, id)
}

func (s *StoryService) ListStories(ctx context.Context, p query.Params) ([]models.Story, error) {
	return s.storyRepo.List(ctx, p)
}

func (s *StoryService) ListOwnStories(ctx context.Context, userID uint, p query.Params) ([]models.Story, error) {
	return s.storyRepo.ListByOwner(ctx, userID, p)
}

// UpdateStory replaces media on the story. Only the author may touch it.
func (s *StoryService) UpdateStory(ctx context.Context, in UpdateStoryInput) (*models.Story, error) {
	story, err := s.storyRepo.GetByID(ctx, in.StoryID)
	if err != nil {
		return nil, err
	}
	if story.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own stories")
	}

	if in.ImageURL != nil {
		story.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.VideoURL != nil {
		story.VideoURL = strings.TrimSpace(*in.VideoURL)
	}
	if story.ImageURL == "" && story.VideoURL == "" {
		return nil, models.NewValidationError("An image or video is required")
	}

	if err := s.storyRepo.Update(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *StoryService) DeleteStory(ctx context.Context, userID, storyID uint) error {
	story, err := s.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return err
	}
	if story.UserID != userID {
		return models.NewForbiddenError("You can only delete your own stories")
	}
	return s.storyRepo.Delete(ctx, storyID)
}
