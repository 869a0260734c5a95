package usecase

import (
	"context"

	"agriassist/internal/domain/entity"
)

// ChatMessageInput defines an inbound chat message.
type ChatMessageInput struct {
	UserID   *string
	Role     entity.ChatRole
	Content  string
	ImageURL *string
	Metadata map[string]any
}

// ChatExchange is the result of one submitted message.
// AssistantMessage is nil when the inbound role was not "user".
type ChatExchange struct {
	UserMessage      *entity.ChatMessage `json:"user_message"`
	AssistantMessage *entity.ChatMessage `json:"assistant_message,omitempty"`
}

// ChatUsecase maintains per-user conversations with the assistant.
type ChatUsecase interface {
	// SendMessage stores the message and, for user turns, stores and returns exactly one assistant
	// reply. When the inference call fails the user message stays stored and no reply is created.
	SendMessage(ctx context.Context, input ChatMessageInput) (*ChatExchange, error)

	// ListMessages returns the user's conversation oldest first.
	ListMessages(ctx context.Context, userID string) []*entity.ChatMessage
}
