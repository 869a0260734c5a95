// Package repository defines the interfaces for the persistence layer.
//
// Lookups report absence with a false flag instead of an error, and list operations return an
// empty slice when nothing matches. Errors are reserved for structurally invalid input.
// Every value handed out is a copy; mutating it never changes stored state.
package repository

import (
	"context"

	"agriassist/internal/domain/entity"
)

// UserRepository defines the persistence operations for user accounts.
type UserRepository interface {
	// CreateUser stores a new user. The username must be unique across all users.
	CreateUser(ctx context.Context, user entity.User) (*entity.User, error)

	// FindUserByID retrieves a user by id.
	FindUserByID(ctx context.Context, id string) (*entity.User, bool)

	// FindUserByUsername retrieves a user by exact username.
	FindUserByUsername(ctx context.Context, username string) (*entity.User, bool)
}
