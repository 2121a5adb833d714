// Package service contains the business logic between handlers and
// repositories. Services own validation and access checks; repositories
// stay dumb.
package service

import (
	"context"

	"lumagram/internal/models"
	"lumagram/internal/query"
	"lumagram/internal/repository"
	"lumagram/internal/validation"
)

type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// Profile is a user together with its social graph tallies.
type Profile struct {
	models.User
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
}

type UpdateProfileInput struct {
	UserID   uint
	TargetID uint
	Nickname *string
	Bio      *string
	ImageURL *string
	Website  *string
	Age      *int
	Phone    *string
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{userRepo: userRepo, followRepo: followRepo}
}

// GetProfile returns the user with follower and following counts. A user
// nobody follows reports zero, not an error.
func (s *UserService) GetProfile(ctx context.Context, id uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Profile{User: *user, FollowersCount: followers, FollowingCount: following}, nil
}

func (s *UserService) ListProfiles(ctx context.Context, callerID uint, p query.Params) ([]models.User, error) {
	return s.userRepo.List(ctx, callerID, p)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if in.UserID != in.TargetID {
		return nil, models.NewForbiddenError("You can only update your own profile")
	}

	user, err := s.userRepo.GetByID(ctx, in.TargetID)
	if err != nil {
		return nil, err
	}

	if in.Nickname != nil {
		if err := validation.ValidateNickname(*in.Nickname); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Nickname = *in.Nickname
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.ImageURL != nil {
		user.ImageURL = *in.ImageURL
	}
	if in.Website != nil {
		user.Website = *in.Website
	}
	if in.Age != nil {
		if err := validation.ValidateAge(in.Age); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Age = in.Age
	}
	if in.Phone != nil {
		if err := validation.ValidatePhone(*in.Phone); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Phone = *in.Phone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteProfile(ctx context.Context, callerID, targetID uint) error {
	if callerID != targetID {
		return models.NewForbiddenError("You can only delete your own profile")
	}
	return s.userRepo.Delete(ctx, targetID)
}
