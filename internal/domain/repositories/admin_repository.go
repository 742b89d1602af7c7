package repositories

import (
	"context"

	"github.com/google/uuid"

	"gdgoc.backend/internal/domain/entities"
)

// AdminRepository defines admin data operations
type AdminRepository interface {
	Create(ctx context.Context, admin *entities.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error)
	GetByUsername(ctx context.Context, username string) (*entities.Admin, error)
	List(ctx context.Context, search string) ([]*entities.Admin, error)
	Update(ctx context.Context, admin *entities.Admin) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
