package server

import (
	"lumagram/internal/models"
	"lumagram/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateChat opens a conversation between the caller and other users.
func (s *Server) CreateChat(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		ParticipantIDs []uint `json:"participant_ids"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	chat, err := s.chatService.CreateChat(ctx, service.CreateChatInput{
		CreatorID:      userID(c),
		ParticipantIDs: req.ParticipantIDs,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(chat)
}

// ListChats lists the caller's conversations.
func (s *Server) ListChats(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := s.parseListParams(c)

	chats, err := s.chatService.ListChats(ctx, userID(c), p)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(chats)
}

// GetChat returns a conversation the caller participates in.
func (s *Server) GetChat(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	chat, err := s.chatService.GetChat(ctx, userID(c), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(chat)
}

// ListMessages returns a chat's history in send order.
func (s *Server) ListMessages(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := s.parseListParams(c)

	messages, err := s.chatService.ListMessages(ctx, userID(c), id, p)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(messages)
}

// SendMessage appends a message to a chat the caller participates in.
func (s *Server) SendMessage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text     string `json:"text"`
		ImageURL string `json:"image_url"`
		VideoURL string `json:"video_url"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.chatService.SendMessage(ctx, service.SendMessageInput{
		ChatID:   id,
		AuthorID: userID(c),
		Text:     req.Text,
		ImageURL: req.ImageURL,
		VideoURL: req.VideoURL,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// DeleteMessage removes a message the caller authored.
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	messageID, err := s.parseID(c, "messageId")
	if err != nil {
		return nil
	}

	if err := s.chatService.DeleteMessage(ctx, userID(c), messageID); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
