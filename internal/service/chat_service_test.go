package service

import (
	"context"
	"testing"

	"lumagram/internal/models"
	"lumagram/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatRepoStub is a stub for repository.ChatRepository.
type chatRepoStub struct {
	createFn         func(context.Context, *models.Chat, []uint) error
	getByIDFn        func(context.Context, uint) (*models.Chat, error)
	listForUserFn    func(context.Context, uint, query.Params) ([]models.Chat, error)
	isParticipantFn  func(context.Context, uint, uint) (bool, error)
	addParticipantFn func(context.Context, uint, uint) error
	deleteFn         func(context.Context, uint) error
	createMessageFn  func(context.Context, *models.Message) error
	getMessageFn     func(context.Context, uint) (*models.Message, error)
	listMessagesFn   func(context.Context, uint, query.Params) ([]models.Message, error)
	deleteMessageFn  func(context.Context, uint) error
}

func (s *chatRepoStub) Create(ctx context.Context, chat *models.Chat, ids []uint) error {
	return s.createFn(ctx, chat, ids)
}
func (s *chatRepoStub) GetByID(ctx context.Context, id uint) (*models.Chat, error) {
	return s.getByIDFn(ctx, id)
}
func (s *chatRepoStub) ListForUser(ctx context.Context, userID uint, p query.Params) ([]models.Chat, error) {
	return s.listForUserFn(ctx, userID, p)
}
func (s *chatRepoStub) IsParticipant(ctx context.Context, chatID, userID uint) (bool, error) {
	return s.isParticipantFn(ctx, chatID, userID)
}
func (s *chatRepoStub) AddParticipant(ctx context.Context, chatID, userID uint) error {
	return s.addParticipantFn(ctx, chatID, userID)
}
func (s *chatRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *chatRepoStub) CreateMessage(ctx context.Context, m *models.Message) error {
	return s.createMessageFn(ctx, m)
}
func (s *chatRepoStub) GetMessage(ctx context.Context, id uint) (*models.Message, error) {
	return s.getMessageFn(ctx, id)
}
func (s *chatRepoStub) ListMessages(ctx context.Context, chatID uint, p query.Params) ([]models.Message, error) {
	return s.listMessagesFn(ctx, chatID, p)
}
func (s *chatRepoStub) DeleteMessage(ctx context.Context, id uint) error {
	return s.deleteMessageFn(ctx, id)
}

func noopChatRepo() *chatRepoStub {
	return &chatRepoStub{
		createFn: func(_ context.Context, _ *models.Chat, _ []uint) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Chat, error) {
			return &models.Chat{ID: id}, nil
		},
		listForUserFn:    func(_ context.Context, _ uint, _ query.Params) ([]models.Chat, error) { return nil, nil },
		isParticipantFn:  func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		addParticipantFn: func(_ context.Context, _, _ uint) error { return nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		createMessageFn:  func(_ context.Context, _ *models.Message) error { return nil },
		getMessageFn: func(_ context.Context, id uint) (*models.Message, error) {
			return &models.Message{ID: id}, nil
		},
		listMessagesFn: func(_ context.Context, _ uint, _ query.Params) ([]models.Message, error) {
			return nil, nil
		},
		deleteMessageFn: func(_ context.Context, _ uint) error { return nil },
	}
}

func TestChatService_CreateChat(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creator alone is not a chat", func(t *testing.T) {
		t.Parallel()
		svc := NewChatService(noopChatRepo(), noopUserRepo())
		_, err := svc.CreateChat(ctx, CreateChatInput{CreatorID: 1})
		assertValidationError(t, err)
	})

	t.Run("duplicates collapse and creator is always included", func(t *testing.T) {
		t.Parallel()
		chatRepo := noopChatRepo()
		var gotIDs []uint
		chatRepo.createFn = func(_ context.Context, chat *models.Chat, ids []uint) error {
			chat.ID = 9
			gotIDs = ids
			return nil
		}
		svc := NewChatService(chatRepo, noopUserRepo())
		_, err := svc.CreateChat(ctx, CreateChatInput{CreatorID: 1, ParticipantIDs: []uint{2, 2, 1, 3}})
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{1, 2, 3}, gotIDs)
	})

	t.Run("unknown participant rejected", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("user", id)
		}
		svc := NewChatService(noopChatRepo(), userRepo)
		_, err := svc.CreateChat(ctx, CreateChatInput{CreatorID: 1, ParticipantIDs: []uint{99}})
		assertAppErrorCode(t, err, "NOT_FOUND")
	})
}

func TestChatService_SendMessage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("non participant forbidden", func(t *testing.T) {
		t.Parallel()
		chatRepo := noopChatRepo()
		chatRepo.isParticipantFn = func(_ context.Context, _, _ uint) (bool, error) { return false, nil }
		svc := NewChatService(chatRepo, noopUserRepo())
		_, err := svc.SendMessage(ctx, SendMessageInput{ChatID: 1, AuthorID: 9, Text: "hi"})
		assertForbiddenError(t, err)
	})

	t.Run("empty message rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewChatService(noopChatRepo(), noopUserRepo())
		_, err := svc.SendMessage(ctx, SendMessageInput{ChatID: 1, AuthorID: 1, Text: "   "})
		assertValidationError(t, err)
	})

	t.Run("media only message is fine", func(t *testing.T) {
		t.Parallel()
		chatRepo := noopChatRepo()
		chatRepo.createMessageFn = func(_ context.Context, m *models.Message) error {
			m.ID = 5
			return nil
		}
		svc := NewChatService(chatRepo, noopUserRepo())
		msg, err := svc.SendMessage(ctx, SendMessageInput{ChatID: 1, AuthorID: 1, ImageURL: "img.jpg"})
		require.NoError(t, err)
		assert.Equal(t, uint(5), msg.ID)
	})
}

func TestChatService_DeleteMessage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	chatRepo := noopChatRepo()
	chatRepo.getMessageFn = func(_ context.Context, id uint) (*models.Message, error) {
		return &models.Message{ID: id, ChatID: 1, AuthorID: 1}, nil
	}
	svc := NewChatService(chatRepo, noopUserRepo())

	t.Run("another participant cannot delete", func(t *testing.T) {
		t.Parallel()
		err := svc.DeleteMessage(ctx, 2, 5)
		assertForbiddenError(t, err)
	})

	t.Run("author deletes", func(t *testing.T) {
		t.Parallel()
		err := svc.DeleteMessage(ctx, 1, 5)
		assert.NoError(t, err)
	})
}

func TestChatService_ListMessages_RequiresMembership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	chatRepo := noopChatRepo()
	chatRepo.isParticipantFn = func(_ context.Context, _, userID uint) (bool, error) {
		return userID == 1, nil
	}
	svc := NewChatService(chatRepo, noopUserRepo())

	_, err := svc.ListMessages(ctx, 2, 1, query.Params{})
	assertForbiddenError(t, err)

	_, err = svc.ListMessages(ctx, 1, 1, query.Params{})
	assert.NoError(t, err)
}
