package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gdgoc.backend/internal/domain/entities"
	domainRepos "gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/internal/infrastructure/models"
)

// ContactRepository implements contact data operations
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create stores a contact message
func (r *ContactRepository) Create(ctx context.Context, contact *entities.Contact) error {
	return translateError(GetDB(ctx, r.db).Create(models.NewContact(contact)).Error)
}

// GetByID gets a contact message by ID
func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error) {
	var m models.Contact
	if err := GetDB(ctx, r.db).Where("id = ?", id.String()).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return m.ToEntity(), nil
}

// List returns a page of contact messages, newest first
func (r *ContactRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.Contact, int64, error) {
	base := func() *gorm.DB {
		q := GetDB(ctx, r.db).Model(&models.Contact{})
		return whereSearch(q, filter.Search, "name", "email", "roll")
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Contact
	if err := page(base(), filter).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Contact, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToEntity())
	}
	return items, total, nil
}

// Delete removes a contact message
func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.Contact{}, "id = ?", id.String()))
}

// Count returns the number of contact messages
func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.Contact{}).Count(&n).Error
	return n, err
}
