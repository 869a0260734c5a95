package entity

import "time"

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a user's conversation with the assistant.
type ChatMessage struct {
	ID        string         `json:"id"`
	UserID    *string        `json:"user_id"`
	Role      ChatRole       `json:"role"`
	Content   string         `json:"content"`
	ImageURL  *string        `json:"image_url"`
	Metadata  map[string]any `json:"metadata"` // Opaque caller context, forwarded to inference.
	CreatedAt time.Time      `json:"created_at"`
}
