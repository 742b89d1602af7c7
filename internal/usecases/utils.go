package usecases

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gdgoc.backend/internal/domain/entities"
	domainerrors "gdgoc.backend/internal/domain/errors"
	"gdgoc.backend/pkg/utils"
)

// notFound turns a repository ErrNotFound into a 404 naming the resource
func notFound(err error, resource string) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound(resource + " not found")
	}
	return err
}

// duplicate turns a unique-index violation into the 400 the API answers with
func duplicate(err error, message string) error {
	if errors.Is(err, domainerrors.ErrAlreadyExists) {
		return domainerrors.Duplicate(message)
	}
	return err
}

func newID() uuid.UUID {
	return utils.GenerateUUIDv7()
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func invalidStatus(status entities.ApplicationStatus, allowed []entities.ApplicationStatus) error {
	names := make([]string, 0, len(allowed))
	for _, s := range allowed {
		names = append(names, string(s))
	}
	return domainerrors.Validation("invalid status", map[string]string{
		"status": fmt.Sprintf("status must be one of [%s], got %q", strings.Join(names, " "), status),
	})
}
