package server

import (
	"lumagram/internal/models"
	"lumagram/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSavedCollection returns the caller's saved collection with items.
func (s *Server) GetSavedCollection(c *fiber.Ctx) error {
	ctx := c.UserContext()

	saved, err := s.savedService.GetCollection(ctx, userID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(saved)
}

// ListSavedItems lists the caller's saved items with pagination.
func (s *Server) ListSavedItems(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := s.parseListParams(c, "post_id")

	items, err := s.savedService.ListItems(ctx, userID(c), p)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(items)
}

// SavePost bookmarks a post into the caller's collection.
func (s *Server) SavePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		PostID uint `json:"post_id"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.savedService.SavePost(ctx, service.SavePostInput{
		UserID: userID(c),
		PostID: req.PostID,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// RemoveSavedItem takes a bookmark back out of the caller's collection.
func (s *Server) RemoveSavedItem(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.savedService.RemoveItem(ctx, userID(c), id); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
