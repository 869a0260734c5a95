package repository

import (
	"context"

	"agriassist/internal/domain/entity"
)

// DiagnosisRepository defines the persistence operations for diagnoses.
type DiagnosisRepository interface {
	// CreateDiagnosis stores a diagnosis and stamps CreatedAt.
	CreateDiagnosis(ctx context.Context, diagnosis entity.Diagnosis) (*entity.Diagnosis, error)
	FindDiagnosisByID(ctx context.Context, id string) (*entity.Diagnosis, bool)

	// ListDiagnoses returns diagnoses in insertion order. A non-empty userID keeps only
	// the diagnoses with that exact userId.
	ListDiagnoses(ctx context.Context, userID string) []*entity.Diagnosis

	// CountDiagnoses returns the number of stored diagnoses.
	CountDiagnoses(ctx context.Context) int
}
