// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"agriassist/internal/domain/entity"
)

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string
	Password string
	Email    *string
	Language *string
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// RegisterUser hashes the password and stores the account. A taken username is rejected.
	RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, error)

	// GetUserByUsername returns the user with that exact username, if any.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, bool)
}
