package repository

import (
	"context"

	"lumagram/internal/models"
	"lumagram/internal/query"

	"gorm.io/gorm"
)

// ChatRepository defines the interface for chat and message operations
type ChatRepository interface {
	Create(ctx context.Context, chat *models.Chat, participantIDs []uint) error
	GetByID(ctx context.Context, id uint) (*models.Chat, error)
	ListForUser(ctx context.Context, userID uint, p query.Params) ([]models.Chat, error)
	IsParticipant(ctx context.Context, chatID, userID uint) (bool, error)
	AddParticipant(ctx context.Context, chatID, userID uint) error
	Delete(ctx context.Context, id uint) error

	CreateMessage(ctx context.Context, message *models.Message) error
	GetMessage(ctx context.Context, id uint) (*models.Message, error)
	ListMessages(ctx context.Context, chatID uint, p query.Params) ([]models.Message, error)
	DeleteMessage(ctx context.Context, id uint) error
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository instance
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// Messages read in send order within a chat. Sorting is not client
// controlled here, only paging.
var messageListSpec = query.Spec{
	SortColumns: []string{"id", "created_at"},
	DefaultSort: "id ASC",
}

var chatListSpec = query.Spec{
	SortColumns: []string{"id", "created_at"},
	DefaultSort: "chats.id ASC",
}

// Create persists a chat and its membership rows in one transaction so a
// half-created conversation never becomes visible.
func (r *chatRepository) Create(ctx context.Context, chat *models.Chat, participantIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chat).Error; err != nil {
			return translateError(err, "chat", 0)
		}
		for _, uid := range participantIDs {
			member := models.ChatParticipant{ChatID: chat.ID, UserID: uid}
			if err := tx.Create(&member).Error; err != nil {
				return translateError(err, "chat participant", uid)
			}
		}
		return nil
	})
}

func (r *chatRepository) GetByID(ctx context.Context, id uint) (*models.Chat, error) {
	var chat models.Chat
	err := r.db.WithContext(ctx).
		Preload("Participants").
		First(&chat, id).Error
	if err != nil {
		return nil, translateError(err, "chat", id)
	}
	return &chat, nil
}

// ListForUser returns only chats the user belongs to.
func (r *chatRepository) ListForUser(ctx context.Context, userID uint, p query.Params) ([]models.Chat, error) {
	var chats []models.Chat
	db := r.db.WithContext(ctx).Model(&models.Chat{}).
		Preload("Participants").
		Joins("JOIN chat_participants ON chat_participants.chat_id = chats.id").
		Where("chat_participants.user_id = ?", userID)
	if err := query.Apply(db, chatListSpec, p).Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *chatRepository) IsParticipant(ctx context.Context, chatID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ChatParticipant{}).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *chatRepository) AddParticipant(ctx context.Context, chatID, userID uint) error {
	member := models.ChatParticipant{ChatID: chatID, UserID: userID}
	if err := r.db.WithContext(ctx).Create(&member).Error; err != nil {
		return translateError(err, "chat participant", userID)
	}
	return nil
}

func (r *chatRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Chat{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("chat", id)
	}
	return nil
}

func (r *chatRepository) CreateMessage(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return translateError(err, "message", message.ChatID)
	}
	return nil
}

func (r *chatRepository) GetMessage(ctx context.Context, id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.WithContext(ctx).Preload("Author").First(&message, id).Error; err != nil {
		return nil, translateError(err, "message", id)
	}
	return &message, nil
}

func (r *chatRepository) ListMessages(ctx context.Context, chatID uint, p query.Params) ([]models.Message, error) {
	var messages []models.Message
	db := r.db.WithContext(ctx).Model(&models.Message{}).
		Preload("Author").
		Where("chat_id = ?", chatID)
	if err := query.Apply(db, messageListSpec, p).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *chatRepository) DeleteMessage(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Message{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("message", id)
	}
	return nil
}
