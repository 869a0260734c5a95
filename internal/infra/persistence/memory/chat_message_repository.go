package memory

import (
	"context"
	"time"

	"agriassist/internal/domain/entity"
	domainerrors "agriassist/internal/domain/errors"
	"agriassist/internal/domain/repository"
)

type chatMessageRepository struct {
	store *Store
}

// NewChatMessageRepository is the constructor for chatMessageRepository.
func NewChatMessageRepository(store *Store) repository.ChatMessageRepository {
	return &chatMessageRepository{store: store}
}

func (repo *chatMessageRepository) CreateChatMessage(ctx context.Context, message entity.ChatMessage) (*entity.ChatMessage, error) {
	if message.Role != entity.ChatRoleUser && message.Role != entity.ChatRoleAssistant {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be user or assistant")
	}
	if err := requireField(message.Content, "content"); err != nil {
		return nil, err
	}

	message.ID = newID()
	message.CreatedAt = repo.store.clock.stamp()

	return repo.store.chatMessages.insert(message.ID, message), nil
}

func (repo *chatMessageRepository) FindChatMessageByID(ctx context.Context, id string) (*entity.ChatMessage, bool) {
	return repo.store.chatMessages.get(id)
}

// ListChatMessagesByUser returns the conversation in replay order, oldest first.
func (repo *chatMessageRepository) ListChatMessagesByUser(ctx context.Context, userID string) []*entity.ChatMessage {
	messages := repo.store.chatMessages.filter(func(m *entity.ChatMessage) bool {
		return m.UserID != nil && *m.UserID == userID
	})
	sortByTime(messages, func(m *entity.ChatMessage) time.Time { return m.CreatedAt }, false)

	return messages
}
