package repositories

import (
	"context"

	"github.com/google/uuid"

	"gdgoc.backend/internal/domain/entities"
)

// ContactRepository defines contact message data operations
type ContactRepository interface {
	Create(ctx context.Context, contact *entities.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error)
	List(ctx context.Context, filter ListFilter) ([]*entities.Contact, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
