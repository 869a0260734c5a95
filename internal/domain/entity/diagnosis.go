package entity

import "time"

// RiskLevel grades how dangerous a diagnosed finding is.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// IsValid reports whether r is one of the known risk levels.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	default:
		return false
	}
}

// DiseaseFinding is one ranked candidate produced by image analysis.
type DiseaseFinding struct {
	Name       string    `json:"name"`
	Confidence float64   `json:"confidence"` // In [0, 1].
	RiskLevel  RiskLevel `json:"risk_level"`
}

// Diagnosis is a persisted diagnosis request, optionally enriched by inference.
type Diagnosis struct {
	ID              string           `json:"id"`
	ImageURL        *string          `json:"image_url"`
	CropID          *string          `json:"crop_id"` // Weak reference to a Crop.
	Symptoms        []string         `json:"symptoms"`
	UserID          *string          `json:"user_id"` // Free-form caller identifier.
	Results         []DiseaseFinding `json:"results"`
	AIAnalysis      *string          `json:"ai_analysis"`
	Recommendations *string          `json:"recommendations"`
	CreatedAt       time.Time        `json:"created_at"` // Set once at creation.
}
