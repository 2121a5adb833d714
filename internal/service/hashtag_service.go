package service

import (
	"context"
	"strings"

	"lumagram/internal/models"
	"lumagram/internal/query"
	"lumagram/internal/repository"
)

const maxTagLen = 100

type HashtagService struct {
	hashtagRepo repository.HashtagRepository
}

func NewHashtagService(hashtagRepo repository.HashtagRepository) *HashtagService {
	return &HashtagService{hashtagRepo: hashtagRepo}
}

func (s *HashtagService) validateTag(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", models.NewValidationError("Tag is required")
	}
	if len(tag) > maxTagLen {
		return "", models.NewValidationError("Tag too long (max 100 characters)")
	}
	return tag, nil
}

func (s *HashtagService) CreateHashtag(ctx context.Context, tag string) (*models.Hashtag, error) {
	tag, err := s.validateTag(tag)
	if err != nil {
		return nil, err
	}

	existing, err := s.hashtagRepo.GetByTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Hashtag already exists")
	}

	hashtag := &models.Hashtag{Tag: tag}
	if err := s.hashtagRepo.Create(ctx, hashtag); err != nil {
		return nil, err
	}
	return hashtag, nil
}

func (s *HashtagService) GetHashtag(ctx context.Context, id uint) (*models.Hashtag, error) {
	return s.hashtagRepo.GetByID(ctx, id)
}

func (s *HashtagService) ListHashtags(ctx context.Context, p query.Params) ([]models.Hashtag, error) {
	return s.hashtagRepo.List(ctx, p)
}

func (s *HashtagService) UpdateHashtag(ctx context.Context, id uint, tag string) (*models.Hashtag, error) {
	hashtag, err := s.hashtagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tag, err = s.validateTag(tag)
	if err != nil {
		return nil, err
	}
	hashtag.Tag = tag
	if err := s.hashtagRepo.Update(ctx, hashtag); err != nil {
		return nil, err
	}
	return hashtag, nil
}

func (s *HashtagService) DeleteHashtag(ctx context.Context, id uint) error {
	return s.hashtagRepo.Delete(ctx, id)
}
