package server

import (
	"lumagram/internal/models"
	"lumagram/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateFollow creates a follow edge from the caller to another user.
func (s *Server) CreateFollow(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		FollowingID uint `json:"following_id"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	follow, err := s.followService.Follow(ctx, service.CreateFollowInput{
		FollowerID:  userID(c),
		FollowingID: req.FollowingID,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(follow)
}

// ListFollows lists follow edges, filterable by follower_id and
// following_id; both follower and following lists are views over it.
func (s *Server) ListFollows(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := s.parseListParams(c, "follower_id", "following_id")

	follows, err := s.followService.ListFollows(ctx, p)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(follows)
}

// GetFollow returns a single follow edge.
func (s *Server) GetFollow(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	follow, err := s.followService.GetFollow(ctx, id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(follow)
}

// UpdateFollow repoints one of the caller's follow edges at a
// different user.
func (s *Server) UpdateFollow(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		FollowingID uint `json:"following_id"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	follow, err := s.followService.UpdateFollow(ctx, service.UpdateFollowInput{
		UserID:      userID(c),
		FollowID:    id,
		FollowingID: req.FollowingID,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(follow)
}

// DeleteFollow removes a follow edge created by the caller.
func (s *Server) DeleteFollow(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.followService.Unfollow(ctx, service.DeleteFollowInput{
		UserID:   userID(c),
		FollowID: id,
	}); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
