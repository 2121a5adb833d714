package server

import (
	"lumagram/internal/models"
	"lumagram/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost publishes a post for the caller.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		ImageURL    string `json:"image_url"`
		VideoURL    string `json:"video_url"`
		Description string `json:"description"`
		HashtagID   uint   `json:"hashtag_id"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		UserID:      userID(c),
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		Description: req.Description,
		HashtagID:   req.HashtagID,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// ListPosts returns the feed as minimal projections, filterable by
// hashtag_id and user_id.
func (s *Server) ListPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := s.parseListParams(c, "hashtag_id", "user_id")

	posts, err := s.postService.ListPosts(ctx, p)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	summaries := make([]models.PostSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, posts[i].Summary())
	}
	return c.JSON(summaries)
}

// ListMyPosts returns the caller's own posts in full.
func (s *Server) ListMyPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := s.parseListParams(c, "hashtag_id")

	posts, err := s.postService.ListOwnPosts(ctx, userID(c), p)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(posts)
}

// GetPost returns full post detail with like and comment counts.
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(ctx, id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost edits a post the caller owns.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		ImageURL    *string `json:"image_url"`
		VideoURL    *string `json:"video_url"`
		Description *string `json:"description"`
		HashtagID   *uint   `json:"hashtag_id"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(ctx, service.UpdatePostInput{
		UserID:      userID(c),
		PostID:      id,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		Description: req.Description,
		HashtagID:   req.HashtagID,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(post)
}

// DeletePost removes a post the caller owns.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(ctx, service.DeletePostInput{
		UserID: userID(c),
		PostID: id,
	}); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
