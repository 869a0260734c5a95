package entity

import "time"

// Alert is a published advisory such as a pest outbreak or weather warning.
type Alert struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`     // e.g. "pest_outbreak", "weather", "scheme"
	Severity    *string    `json:"severity"` // e.g. "urgent", "warning", "info"
	Region      *string    `json:"region"`
	CropIDs     []string   `json:"crop_ids"` // Weak references to crops.
	PublishedAt time.Time  `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at"` // nil means the alert never expires.
}

// IsActiveAt reports whether the alert is still in force at the given instant.
func (a *Alert) IsActiveAt(now time.Time) bool {
	return a.ExpiresAt == nil || a.ExpiresAt.After(now)
}
