package server

import (
	"lumagram/internal/models"
	"lumagram/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePostLike records the caller's reaction to a post. Repeating the
// call for the same post conflicts; change your mind with an update.
func (s *Server) CreatePostLike(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		PostID uint `json:"post_id"`
		Like   bool `json:"like"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	like, err := s.likeService.RatePost(ctx, service.RatePostInput{
		UserID: userID(c),
		PostID: req.PostID,
		Like:   req.Like,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(like)
}

// ListPostLikes lists like records, filterable by user_id, post_id and value.
func (s *Server) ListPostLikes(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := s.parseListParams(c, "user_id", "post_id", "like")

	likes, err := s.likeService.ListPostLikes(ctx, p)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(likes)
}

// GetPostLike returns a single like record.
func (s *Server) GetPostLike(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	like, err := s.likeService.GetPostLike(ctx, id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(like)
}

// UpdatePostLike flips the caller's like record in place.
func (s *Server) UpdatePostLike(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Like bool `json:"like"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	like, err := s.likeService.UpdatePostLike(ctx, service.UpdatePostLikeInput{
		UserID: userID(c),
		LikeID: id,
		Like:   req.Like,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(like)
}

// DeletePostLike withdraws the caller's like record entirely.
func (s *Server) DeletePostLike(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.likeService.DeletePostLike(ctx, userID(c), id); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCommentLike records a reaction to a comment. The boolean may be
// omitted to mark the record without taking a side.
func (s *Server) CreateCommentLike(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		CommentID uint  `json:"comment_id"`
		Like      *bool `json:"like"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	like, err := s.likeService.RateComment(ctx, service.RateCommentInput{
		UserID:    userID(c),
		CommentID: req.CommentID,
		Like:      req.Like,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(like)
}

// ListCommentLikes lists comment reactions, filterable by user_id and comment_id.
func (s *Server) ListCommentLikes(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := s.parseListParams(c, "user_id", "comment_id")

	likes, err := s.likeService.ListCommentLikes(ctx, p)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(likes)
}

// GetCommentLike returns a single comment reaction.
func (s *Server) GetCommentLike(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	like, err := s.likeService.GetCommentLike(ctx, id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(like)
}

// UpdateCommentLike changes the caller's comment reaction, including back
// to undecided.
func (s *Server) UpdateCommentLike(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Like *bool `json:"like"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	like, err := s.likeService.UpdateCommentLike(ctx, service.UpdateCommentLikeInput{
		UserID: userID(c),
		LikeID: id,
		Like:   req.Like,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(like)
}

// DeleteCommentLike removes the caller's comment reaction.
func (s *Server) DeleteCommentLike(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.likeService.DeleteCommentLike(ctx, userID(c), id); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
