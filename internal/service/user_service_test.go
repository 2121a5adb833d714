package service

import (
	"context"
	"testing"

	"lumagram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("counts ride along", func(t *testing.T) {
		t.Parallel()
		followRepo := noopFollowRepo()
		followRepo.countFollowersFn = func(_ context.Context, _ uint) (int64, error) { return 12, nil }
		followRepo.countFollowingFn = func(_ context.Context, _ uint) (int64, error) { return 3, nil }
		svc := NewUserService(noopUserRepo(), followRepo)

		profile, err := svc.GetProfile(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(12), profile.FollowersCount)
		assert.Equal(t, int64(3), profile.FollowingCount)
	})

	t.Run("fresh user counts zero", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo(), noopFollowRepo())
		profile, err := svc.GetProfile(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, profile.FollowersCount)
		assert.Zero(t, profile.FollowingCount)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	nickname := "Sunny"
	badAge := 12
	goodAge := 25

	t.Run("only own profile", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo(), noopFollowRepo())
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, TargetID: 2, Nickname: &nickname})
		assertForbiddenError(t, err)
	})

	t.Run("age outside range rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo(), noopFollowRepo())
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, TargetID: 1, Age: &badAge})
		assertValidationError(t, err)
	})

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Nickname: "Old", Bio: "about me"}, nil
		}
		var saved *models.User
		userRepo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := NewUserService(userRepo, noopFollowRepo())

		user, err := svc.UpdateProfile(ctx, UpdateProfileInput{
			UserID:   1,
			TargetID: 1,
			Nickname: &nickname,
			Age:      &goodAge,
		})
		require.NoError(t, err)
		assert.Equal(t, "Sunny", user.Nickname)
		assert.Equal(t, "about me", user.Bio)
		require.NotNil(t, saved.Age)
		assert.Equal(t, 25, *saved.Age)
	})
}

func TestUserService_DeleteProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewUserService(noopUserRepo(), noopFollowRepo())

	err := svc.DeleteProfile(ctx, 1, 2)
	assertForbiddenError(t, err)

	err = svc.DeleteProfile(ctx, 1, 1)
	assert.NoError(t, err)
}
