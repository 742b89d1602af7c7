package repositories

import (
	"context"

	"github.com/google/uuid"

	"gdgoc.backend/internal/domain/entities"
)

// EventRepository defines event data operations. Lists are newest first.
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	List(ctx context.Context, filter ListFilter) ([]*entities.Event, int64, error)
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
