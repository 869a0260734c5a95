// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered farmer account.
// Chat and diagnosis records refer to users by a free-form userId string and are not tied to this type.
type User struct {
	ID           string    `json:"id"`         // Process-unique identifier assigned at creation.
	Username     string    `json:"username"`   // Unique across all users.
	PasswordHash string    `json:"-"`          // bcrypt hash of the password; never serialized.
	Email        *string   `json:"email"`      // Optional contact email.
	Language     *string   `json:"language"`   // Preferred UI language, e.g. "en", "hi".
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when the account was created.
}
