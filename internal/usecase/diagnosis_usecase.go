package usecase

import (
	"context"

	"agriassist/internal/domain/entity"
)

// DiagnosisInput defines a raw diagnosis request. Every field is optional.
type DiagnosisInput struct {
	ImageURL *string // data-URL encoded image
	CropID   *string
	Symptoms []string
	UserID   *string
}

// DiagnosisUsecase turns diagnosis requests into persisted diagnoses.
type DiagnosisUsecase interface {
	// CreateDiagnosis runs image analysis when both an image and a crop are given, then persists
	// the outcome. An unknown crop fails with ErrInvalidCrop; a failed inference call fails with
	// ErrInferenceFailed. In both cases nothing is stored.
	CreateDiagnosis(ctx context.Context, input DiagnosisInput) (*entity.Diagnosis, error)

	// ListDiagnoses returns diagnoses in creation order, filtered by userID when it is non-empty.
	ListDiagnoses(ctx context.Context, userID string) []*entity.Diagnosis
	GetDiagnosis(ctx context.Context, id string) (*entity.Diagnosis, bool)
}
