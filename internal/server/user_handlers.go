package server

import (
	"lumagram/internal/cache"
	"lumagram/internal/models"
	"lumagram/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListProfiles returns the profile listing visible to the caller with
// nickname filtering and search.
func (s *Server) ListProfiles(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := s.parseListParams(c, "nickname")

	users, err := s.userService.ListProfiles(ctx, userID(c), p)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(users)
}

// GetProfile returns a profile with follower and following counts,
// served through the cache.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var profile service.Profile
	cacheErr := cache.Aside(ctx, cache.UserKey(id), &profile, cache.UserTTL, func() error {
		p, err := s.userService.GetProfile(ctx, id)
		if err != nil {
			return err
		}
		profile = *p
		return nil
	})
	if cacheErr != nil {
		return models.RespondWithAppError(c, cacheErr)
	}
	return c.JSON(profile)
}

// UpdateProfile updates the caller's own profile.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Nickname *string `json:"nickname"`
		Bio      *string `json:"bio"`
		ImageURL *string `json:"image_url"`
		Website  *string `json:"website"`
		Age      *int    `json:"age"`
		Phone    *string `json:"phone"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(ctx, service.UpdateProfileInput{
		UserID:   userID(c),
		TargetID: id,
		Nickname: req.Nickname,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
		Website:  req.Website,
		Age:      req.Age,
		Phone:    req.Phone,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	cache.InvalidateUser(ctx, id)
	return c.JSON(user)
}

// DeleteProfile removes the caller's account and everything attached to it.
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteProfile(ctx, userID(c), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	cache.InvalidateUser(ctx, id)
	return c.SendStatus(fiber.StatusNoContent)
}
