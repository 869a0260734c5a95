package entity

import "time"

// FeedbackStatusPending is the only status the core ever assigns.
const FeedbackStatusPending = "pending"

// Feedback is a message submitted through the contact form.
type Feedback struct {
	ID        string    `json:"id"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
