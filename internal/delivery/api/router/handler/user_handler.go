package handler

import (
	"log/slog"

	"agriassist/internal/delivery/api/response"
	"agriassist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterUserRequest represents the request body for user registration
type RegisterUserRequest struct {
	Username string  `json:"username" validate:"required,max=64"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Language *string `json:"language"`
}

// RegisterUser handles POST /api/users
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindAndValidate(c, h.logger, &req); err != nil {
		return err
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), usecase.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    emptyToNil(req.Email),
		Language: emptyToNil(req.Language),
	})
	if err != nil {
		return err
	}

	return response.Created(c, user)
}

// GetUser handles GET /api/users/:username
func (h *UserHandler) GetUser(c echo.Context) error {
	user, ok := h.userUC.GetUserByUsername(c.Request().Context(), c.Param("username"))
	if !ok {
		return notFound(c, "user")
	}

	return response.OK(c, user)
}
