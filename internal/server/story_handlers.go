package server

import (
	"lumagram/internal/models"
	"lumagram/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateStory publishes a story for the caller.
func (s *Server) CreateStory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		ImageURL string `json:"image_url"`
		VideoURL string `json:"video_url"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	story, err := s.storyService.CreateStory(ctx, service.CreateStoryInput{
		UserID:   userID(c),
		ImageURL: req.ImageURL,
		VideoURL: req.VideoURL,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(story)
}

// ListStories lists stories, newest first, filterable by user_id.
func (s *Server) ListStories(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := s.parseListParams(c, "user_id")

	stories, err := s.storyService.ListStories(ctx, p)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(stories)
}

// ListMyStories returns the caller's stories.
func (s *Server) ListMyStories(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := s.parseListParams(c)

	stories, err := s.storyService.ListOwnStories(ctx, userID(c), p)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(stories)
}

// GetStory returns a single story.
func (s *Server) GetStory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	story, err := s.storyService.GetStory(ctx, id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(story)
}

// UpdateStory replaces media on a story the caller owns.
func (s *Server) UpdateStory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		ImageURL *string `json:"image_url"`
		VideoURL *string `json:"video_url"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	story, err := s.storyService.UpdateStory(ctx, service.UpdateStoryInput{
		UserID:   userID(c),
		StoryID:  id,
		ImageURL: req.ImageURL,
		VideoURL: req.VideoURL,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(story)
}

// DeleteStory removes a story the caller owns.
func (s *Server) DeleteStory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.storyService.DeleteStory(ctx, userID(c), id); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
