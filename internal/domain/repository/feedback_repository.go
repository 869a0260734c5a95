package repository

import (
	"context"

	"agriassist/internal/domain/entity"
)

// FeedbackRepository defines the persistence operations for contact-form feedback.
type FeedbackRepository interface {
	// CreateFeedback stores feedback with status "pending", whatever the input says.
	CreateFeedback(ctx context.Context, feedback entity.Feedback) (*entity.Feedback, error)
	FindFeedbackByID(ctx context.Context, id string) (*entity.Feedback, bool)

	// ListFeedback returns all feedback newest first.
	ListFeedback(ctx context.Context) []*entity.Feedback
}
