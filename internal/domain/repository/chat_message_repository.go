package repository

import (
	"context"

	"agriassist/internal/domain/entity"
)

// ChatMessageRepository defines the persistence operations for chat history.
type ChatMessageRepository interface {
	// CreateChatMessage appends a message and stamps CreatedAt.
	CreateChatMessage(ctx context.Context, message entity.ChatMessage) (*entity.ChatMessage, error)
	FindChatMessageByID(ctx context.Context, id string) (*entity.ChatMessage, bool)

	// ListChatMessagesByUser returns the user's messages oldest first.
	ListChatMessagesByUser(ctx context.Context, userID string) []*entity.ChatMessage
}
