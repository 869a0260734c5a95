package usecase

import (
	"context"

	"agriassist/internal/domain/entity"
)

// FeedbackInput defines a contact-form submission.
type FeedbackInput struct {
	Type    string
	Name    *string
	Email   *string
	Message string
}

// FeedbackUsecase defines contact-form operations.
type FeedbackUsecase interface {
	// SubmitFeedback stores the submission with status "pending".
	SubmitFeedback(ctx context.Context, input FeedbackInput) (*entity.Feedback, error)
	ListFeedback(ctx context.Context) []*entity.Feedback
}
