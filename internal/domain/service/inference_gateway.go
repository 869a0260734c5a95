// Package service defines interfaces for core, stateless domain logic and external capabilities.
package service

import (
	"context"

	"agriassist/internal/domain/entity"
)

// ImagePayload is a crop photo with its data-URL envelope removed.
type ImagePayload struct {
	MimeType string // e.g. "image/jpeg"
	Data     string // base64-encoded image bytes
}

// ImageDiagnosis is the structured outcome of image analysis.
type ImageDiagnosis struct {
	Findings        []entity.DiseaseFinding // ranked, most likely first
	Analysis        string
	Recommendations string
}

// ChatTurn is one (role, content) pair of conversation history.
type ChatTurn struct {
	Role    entity.ChatRole
	Content string
}

// InferenceGateway is the external AI capability used by the orchestrators.
// Implementations either succeed or return an error wrapping ErrInferenceFailed; an unconfigured
// gateway is represented by a nil InferenceGateway, never by a stub implementation.
type InferenceGateway interface {
	// DiagnoseImage classifies diseases visible in the image of the named crop.
	DiagnoseImage(ctx context.Context, image ImagePayload, cropName string, symptoms []string) (*ImageDiagnosis, error)

	// Converse produces the assistant's next reply for the ordered history.
	// userContext is opaque caller metadata and may be nil.
	Converse(ctx context.Context, history []ChatTurn, userContext map[string]any) (string, error)
}
