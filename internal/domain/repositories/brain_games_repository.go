package repositories

import (
	"context"

	"github.com/google/uuid"

	"gdgoc.backend/internal/domain/entities"
)

// BrainGamesRepository defines brain games registration data operations
type BrainGamesRepository interface {
	Create(ctx context.Context, reg *entities.BrainGamesRegistration) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BrainGamesRegistration, error)
	// TeamNameExists compares team names case-insensitively
	TeamNameExists(ctx context.Context, teamName string) (bool, error)
	// MemberExists reports whether any email or roll number is already registered
	MemberExists(ctx context.Context, emails, rollNumbers []string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*entities.BrainGamesRegistration, int64, error)
	Stats(ctx context.Context) (*entities.StatusSummary, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
