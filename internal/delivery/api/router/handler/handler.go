// Package handler contains the echo handlers of the public API.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"agriassist/internal/delivery/api/response"
	deliverycontext "agriassist/internal/delivery/context"
	domainerrors "agriassist/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, logger *slog.Logger, req any) error {
	log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger)

	if err := c.Bind(req); err != nil {
		log.Warn("Failed to bind request body", slog.String("path", c.Path()), slog.Any("error", err))

		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(req); err != nil {
		log.Debug("Request validation failed", slog.String("path", c.Path()), slog.Any("error", err))

		return err
	}

	return nil
}

// notFound renders a 404 naming the missing resource.
func notFound(c echo.Context, resource string) error {
	return response.Error(c, http.StatusNotFound, domainerrors.ErrNotFound.ErrorCode(), resource+" not found", nil)
}

// emptyToNil maps a blank optional string to nil.
func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}

	return s
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
