package memory

import (
	"strings"

	domainerrors "agriassist/internal/domain/errors"
)

// requireField rejects blank required string fields.
func requireField(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return domainerrors.ErrValidationFailed.WithDetails(name + " is required")
	}

	return nil
}
