package repositories

import (
	"context"

	"github.com/google/uuid"

	"gdgoc.backend/internal/domain/entities"
)

// RecruitmentRepository defines recruitment application data operations
type RecruitmentRepository interface {
	Create(ctx context.Context, app *entities.RecruitmentApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.RecruitmentApplication, error)
	// FindByEmailOrRoll returns an application using either value, or ErrNotFound
	FindByEmailOrRoll(ctx context.Context, email, rollNumber string) (*entities.RecruitmentApplication, error)
	List(ctx context.Context, filter ListFilter) ([]*entities.RecruitmentApplication, int64, error)
	Emails(ctx context.Context, filter ListFilter) ([]string, error)
	Stats(ctx context.Context) (*entities.RecruitmentStats, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error
	BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status entities.ApplicationStatus) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
