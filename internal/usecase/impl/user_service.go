package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "agriassist/internal/delivery/context"
	"agriassist/internal/domain/entity"
	domainerrors "agriassist/internal/domain/errors"
	"agriassist/internal/domain/repository"
	"agriassist/internal/domain/service"
	"agriassist/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser hashes the password and stores the new account.
func (srv *userService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username is required")
	}
	if input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password is required")
	}

	if _, taken := srv.userRepo.FindUserByUsername(ctx, username); taken {
		return nil, domainerrors.ErrUsernameTaken.WithDetails(username)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	user, err := srv.userRepo.CreateUser(ctx, entity.User{
		Username:     username,
		PasswordHash: hash,
		Email:        input.Email,
		Language:     input.Language,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID), slog.String("username", user.Username))

	return user, nil
}

// GetUserByUsername returns the user with that exact username.
func (srv *userService) GetUserByUsername(ctx context.Context, username string) (*entity.User, bool) {
	return srv.userRepo.FindUserByUsername(ctx, username)
}
