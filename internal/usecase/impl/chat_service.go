package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "agriassist/internal/delivery/context"
	"agriassist/internal/domain/entity"
	domainerrors "agriassist/internal/domain/errors"
	"agriassist/internal/domain/repository"
	"agriassist/internal/domain/service"
	"agriassist/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const degradedChatReply = "AI chat is currently unavailable. For agricultural advice, please visit the Experts page " +
	"to connect with agricultural specialists who can help with your farming questions."

// chatService implements the ChatUsecase interface.
type chatService struct {
	chatRepo repository.ChatMessageRepository
	gateway  service.InferenceGateway
	logger   *slog.Logger

	// turns serializes exchanges per user so a reply always follows its own message.
	turns keyedLock
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo repository.ChatMessageRepository
	Gateway  service.InferenceGateway `optional:"true"`
	Logger   *slog.Logger
}

// NewChatService is the constructor for chatService. A nil Gateway selects degraded mode.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo: params.ChatRepo,
		gateway:  params.Gateway,
		logger:   params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage stores the inbound message and, for user turns, generates and stores the reply.
func (srv *chatService) SendMessage(ctx context.Context, input usecase.ChatMessageInput) (*usecase.ChatExchange, error) {
	if input.Role != entity.ChatRoleUser && input.Role != entity.ChatRoleAssistant {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be user or assistant")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	anonymous := isBlank(input.UserID)
	if !anonymous {
		unlock, err := srv.turns.lock(ctx, *input.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "waiting for previous chat turn")
		}
		defer unlock()
	}

	userMessage, err := srv.chatRepo.CreateChatMessage(ctx, entity.ChatMessage{
		UserID:   input.UserID,
		Role:     input.Role,
		Content:  input.Content,
		ImageURL: input.ImageURL,
		Metadata: input.Metadata,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store chat message")
	}

	exchange := &usecase.ChatExchange{UserMessage: userMessage}
	if input.Role != entity.ChatRoleUser {
		return exchange, nil
	}

	history := []service.ChatTurn{{Role: userMessage.Role, Content: userMessage.Content}}
	if !anonymous {
		history = toChatTurns(srv.chatRepo.ListChatMessagesByUser(ctx, *input.UserID))
	}

	reply, err := srv.reply(ctx, history, input.Metadata)
	if err != nil {
		return nil, err
	}

	assistantMessage, err := srv.chatRepo.CreateChatMessage(ctx, entity.ChatMessage{
		UserID:   input.UserID,
		Role:     entity.ChatRoleAssistant,
		Content:  reply,
		Metadata: input.Metadata,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store assistant reply")
	}
	exchange.AssistantMessage = assistantMessage

	srv.log(ctx).Debug("Chat exchange completed", slog.String("messageID", userMessage.ID), slog.Int("historyLength", len(history)))

	return exchange, nil
}

func (srv *chatService) reply(ctx context.Context, history []service.ChatTurn, userContext map[string]any) (string, error) {
	if srv.gateway == nil {
		srv.log(ctx).Warn("Inference gateway not configured, returning degraded chat reply")

		return degradedChatReply, nil
	}

	reply, err := srv.gateway.Converse(ctx, history, userContext)
	if err != nil {
		srv.log(ctx).Error("Chat inference failed", slog.Int("historyLength", len(history)), slog.Any("error", err))
		if !domainerrors.IsInference(err) {
			return "", domainerrors.ErrInferenceFailed.WrapMessage(err.Error())
		}

		return "", errors.WithStack(err)
	}

	return reply, nil
}

// ListMessages returns the user's conversation oldest first.
func (srv *chatService) ListMessages(ctx context.Context, userID string) []*entity.ChatMessage {
	return srv.chatRepo.ListChatMessagesByUser(ctx, userID)
}

func toChatTurns(messages []*entity.ChatMessage) []service.ChatTurn {
	turns := make([]service.ChatTurn, 0, len(messages))
	for _, msg := range messages {
		turns = append(turns, service.ChatTurn{Role: msg.Role, Content: msg.Content})
	}

	return turns
}

// keyedLock hands out one single-slot semaphore per key. Entries are reference counted and
// dropped when idle.
type keyedLock struct {
	mu    sync.Mutex
	slots map[string]*keyedSlot
}

type keyedSlot struct {
	ch   chan struct{}
	refs int
}

// lock blocks until the key is free or ctx is done. The returned func releases the key.
func (k *keyedLock) lock(ctx context.Context, key string) (func(), error) {
	k.mu.Lock()
	if k.slots == nil {
		k.slots = make(map[string]*keyedSlot)
	}
	slot, ok := k.slots[key]
	if !ok {
		slot = &keyedSlot{ch: make(chan struct{}, 1)}
		k.slots[key] = slot
	}
	slot.refs++
	k.mu.Unlock()

	select {
	case slot.ch <- struct{}{}:
	case <-ctx.Done():
		k.release(key, slot)

		return nil, ctx.Err()
	}

	return func() {
		<-slot.ch
		k.release(key, slot)
	}, nil
}

func (k *keyedLock) release(key string, slot *keyedSlot) {
	k.mu.Lock()
	defer k.mu.Unlock()

	slot.refs--
	if slot.refs == 0 {
		delete(k.slots, key)
	}
}
