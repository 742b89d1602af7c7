package repositories

import (
	"context"

	"github.com/google/uuid"

	"gdgoc.backend/internal/domain/entities"
)

// NewEventRegistrationRepository defines new-event registration data operations
type NewEventRegistrationRepository interface {
	Create(ctx context.Context, reg *entities.NewEventRegistration) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.NewEventRegistration, error)
	LeaderEmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*entities.NewEventRegistration, int64, error)
	Stats(ctx context.Context) (*entities.StatusSummary, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
