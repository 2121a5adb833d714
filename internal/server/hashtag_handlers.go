package server

import (
	"lumagram/internal/models"

	"github.com/gofiber/fiber/v2"
)

type hashtagRequest struct {
	Tag string `json:"tag"`
}

// CreateHashtag registers a new tag.
func (s *Server) CreateHashtag(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req hashtagRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	hashtag, err := s.hashtagService.CreateHashtag(ctx, req.Tag)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(hashtag)
}

// ListHashtags lists tags with filtering and search on the tag text.
func (s *Server) ListHashtags(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := s.parseListParams(c, "tag")

	hashtags, err := s.hashtagService.ListHashtags(ctx, p)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(hashtags)
}

// GetHashtag returns a single tag.
func (s *Server) GetHashtag(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	hashtag, err := s.hashtagService.GetHashtag(ctx, id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(hashtag)
}

// UpdateHashtag renames a tag.
func (s *Server) UpdateHashtag(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req hashtagRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	hashtag, err := s.hashtagService.UpdateHashtag(ctx, id, req.Tag)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(hashtag)
}

// DeleteHashtag removes a tag.
func (s *Server) DeleteHashtag(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.hashtagService.DeleteHashtag(ctx, id); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
