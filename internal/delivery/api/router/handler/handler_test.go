package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "agriassist/internal/domain/errors"
	"agriassist/internal/infra/persistence/memory"
	"agriassist/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackHandler_SubmitFeedback_LogsMalformedBody(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h := NewFeedbackHandler(FeedbackHandlerParams{
		FeedbackUC: impl.NewFeedbackService(impl.FeedbackServiceParams{
			FeedbackRepo: memory.NewFeedbackRepository(memory.New(memory.WithSeed(false))),
			Logger:       logger,
		}),
		Logger: logger,
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(`{"type":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/feedback")

	err := h.SubmitFeedback(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, buf.String(), "Failed to bind request body")
	assert.Contains(t, buf.String(), "path=/api/feedback")
}
