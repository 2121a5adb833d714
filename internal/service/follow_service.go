package service

import (
	"context"

	"lumagram/internal/models"
	"lumagram/internal/query"
	"lumagram/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

type CreateFollowInput struct {
	FollowerID  uint
	FollowingID uint
}

type UpdateFollowInput struct {
	UserID      uint
	FollowID    uint
	FollowingID uint
}

type DeleteFollowInput struct {
	UserID   uint
	FollowID uint
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow creates a directed edge. Following yourself is rejected, and the
// unique (follower, following) pair turns a repeat into a conflict.
func (s *FollowService) Follow(ctx context.Context, in CreateFollowInput) (*models.Follow, error) {
	if in.FollowerID == in.FollowingID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, in.FollowingID); err != nil {
		return nil, err
	}

	follow := &models.Follow{
		FollowerID:  in.FollowerID,
		FollowingID: in.FollowingID,
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}
	return s.followRepo.GetByID(ctx, follow.ID)
}

func (s *FollowService) GetFollow(ctx context.Context, id uint) (*models.Follow, error) {
	return s.followRepo.GetByID(ctx, id)
}

// ListFollows exposes the edge listing with follower_id / following_id
// filters; follower and following lists are both views over it.
func (s *FollowService) ListFollows(ctx context.Context, p query.Params) ([]models.Follow, error) {
	return s.followRepo.List(ctx, p)
}

// UpdateFollow repoints an edge at a different user. Only the follower
// who owns the edge may change it, and the usual create rules apply:
// no self-follow, the target must exist, and the resulting pair must
// still be unique.
func (s *FollowService) UpdateFollow(ctx context.Context, in UpdateFollowInput) (*models.Follow, error) {
	follow, err := s.followRepo.GetByID(ctx, in.FollowID)
	if err != nil {
		return nil, err
	}
	if follow.FollowerID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own follows")
	}
	if in.FollowingID == in.UserID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, in.FollowingID); err != nil {
		return nil, err
	}

	follow.FollowingID = in.FollowingID
	if err := s.followRepo.Update(ctx, follow); err != nil {
		return nil, err
	}
	return s.followRepo.GetByID(ctx, follow.ID)
}

// Unfollow deletes an edge. Only the follower who created it may remove it.
func (s *FollowService) Unfollow(ctx context.Context, in DeleteFollowInput) error {
	follow, err := s.followRepo.GetByID(ctx, in.FollowID)
	if err != nil {
		return err
	}
	if follow.FollowerID != in.UserID {
		return models.NewForbiddenError("You can only remove your own follows")
	}
	return s.followRepo.Delete(ctx, in.FollowID)
}
