package handler

import (
	"log/slog"

	"agriassist/internal/delivery/api/response"
	"agriassist/internal/domain/entity"
	"agriassist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatHandler serves the assistant conversation endpoints.
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// SendMessageRequest represents one inbound chat message. Role defaults to "user".
type SendMessageRequest struct {
	UserID   *string        `json:"user_id"`
	Role     string         `json:"role" validate:"omitempty,oneof=user assistant"`
	Content  string         `json:"content" validate:"required"`
	ImageURL *string        `json:"image_url"`
	Metadata map[string]any `json:"metadata"`
}

// SendMessage handles POST /api/chat
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := bindAndValidate(c, h.logger, &req); err != nil {
		return err
	}

	role := entity.ChatRole(req.Role)
	if role == "" {
		role = entity.ChatRoleUser
	}

	exchange, err := h.chatUC.SendMessage(c.Request().Context(), usecase.ChatMessageInput{
		UserID:   emptyToNil(req.UserID),
		Role:     role,
		Content:  req.Content,
		ImageURL: emptyToNil(req.ImageURL),
		Metadata: req.Metadata,
	})
	if err != nil {
		return err
	}

	return response.Created(c, exchange)
}

// ListMessages handles GET /api/chat/:userId
func (h *ChatHandler) ListMessages(c echo.Context) error {
	return response.OK(c, h.chatUC.ListMessages(c.Request().Context(), c.Param("userId")))
}
