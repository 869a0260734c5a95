package memory

import (
	"context"

	"agriassist/internal/domain/entity"
	domainerrors "agriassist/internal/domain/errors"
	"agriassist/internal/domain/repository"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	store *Store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// CreateUser stores a new user, rejecting a username that is already taken.
func (repo *userRepository) CreateUser(ctx context.Context, user entity.User) (*entity.User, error) {
	if err := requireField(user.Username, "username"); err != nil {
		return nil, err
	}
	if err := requireField(user.PasswordHash, "password"); err != nil {
		return nil, err
	}

	user.ID = newID()
	user.CreatedAt = repo.store.clock.stamp()

	created, ok := repo.store.users.insertUnless(user.ID, user, func(existing *entity.User) bool {
		return existing.Username == user.Username
	})
	if !ok {
		return nil, domainerrors.ErrUsernameTaken.WithDetails(user.Username)
	}

	return created, nil
}

// FindUserByID retrieves a user by id.
func (repo *userRepository) FindUserByID(ctx context.Context, id string) (*entity.User, bool) {
	return repo.store.users.get(id)
}

// FindUserByUsername retrieves a user by exact username.
func (repo *userRepository) FindUserByUsername(ctx context.Context, username string) (*entity.User, bool) {
	return repo.store.users.find(func(u *entity.User) bool {
		return u.Username == username
	})
}
