package service

import (
	"context"
	"strings"

	"lumagram/internal/models"
	"lumagram/internal/query"
	"lumagram/internal/repository"
)

const maxMessageLen = 10000

type ChatService struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

type CreateChatInput struct {
	CreatorID      uint
	ParticipantIDs []uint
}

type SendMessageInput struct {
	ChatID   uint
	AuthorID uint
	Text     string
	ImageURL string
	VideoURL string
}

func NewChatService(chatRepo repository.ChatRepository, userRepo repository.UserRepository) *ChatService {
	return &ChatService{chatRepo: chatRepo, userRepo: userRepo}
}

// CreateChat opens a conversation. The creator is always a participant;
// duplicate IDs in the request collapse to one membership.
func (s *ChatService) CreateChat(ctx context.Context, in CreateChatInput) (*models.Chat, error) {
	members := map[uint]bool{in.CreatorID: true}
	ids := []uint{in.CreatorID}
	for _, id := range in.ParticipantIDs {
		if members[id] {
			continue
		}
		if _, err := s.userRepo.GetByID(ctx, id); err != nil {
			return nil, err
		}
		members[id] = true
		ids = append(ids, id)
	}
	if len(ids) < 2 {
		return nil, models.NewValidationError("A chat needs at least one other participant")
	}

	chat := &models.Chat{}
	if err := s.chatRepo.Create(ctx, chat, ids); err != nil {
		return nil, err
	}
	return s.chatRepo.GetByID(ctx, chat.ID)
}

// GetChat returns the conversation, participants only.
func (s *ChatService) GetChat(ctx context.Context, userID, chatID uint) (*models.Chat, error) {
	if err := s.requireParticipant(ctx, chatID, userID); err != nil {
		return nil, err
	}
	return s.chatRepo.GetByID(ctx, chatID)
}

func (s *ChatService) ListChats(ctx context.Context, userID uint, p query.Params) ([]models.Chat, error) {
	return s.chatRepo.ListForUser(ctx, userID, p)
}

// SendMessage appends to the conversation. Authorship comes from the
// caller and the caller must already be a participant.
func (s *ChatService) SendMessage(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" && in.ImageURL == "" && in.VideoURL == "" {
		return nil, models.NewValidationError("Message needs text or media")
	}
	if len(text) > maxMessageLen {
		return nil, models.NewValidationError("Message too long (max 10000 characters)")
	}
	if err := s.requireParticipant(ctx, in.ChatID, in.AuthorID); err != nil {
		return nil, err
	}

	message := &models.Message{
		ChatID:   in.ChatID,
		AuthorID: in.AuthorID,
		Text:     text,
		ImageURL: in.ImageURL,
		VideoURL: in.VideoURL,
	}
	if err := s.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	return s.chatRepo.GetMessage(ctx, message.ID)
}

// ListMessages returns the chat history in send order.
func (s *ChatService) ListMessages(ctx context.Context, userID, chatID uint, p query.Params) ([]models.Message, error) {
	if err := s.requireParticipant(ctx, chatID, userID); err != nil {
		return nil, err
	}
	return s.chatRepo.ListMessages(ctx, chatID, p)
}

// DeleteMessage removes a message; only its author may.
func (s *ChatService) DeleteMessage(ctx context.Context, userID, messageID uint) error {
	message, err := s.chatRepo.GetMessage(ctx, messageID)
	if err != nil {
		return err
	}
	if message.AuthorID != userID {
		return models.NewForbiddenError("You can only delete your own messages")
	}
	return s.chatRepo.DeleteMessage(ctx, messageID)
}

func (s *ChatService) requireParticipant(ctx context.Context, chatID, userID uint) error {
	if _, err := s.chatRepo.GetByID(ctx, chatID); err != nil {
		return err
	}
	ok, err := s.chatRepo.IsParticipant(ctx, chatID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewForbiddenError("You are not a participant of this chat")
	}
	return nil
}
