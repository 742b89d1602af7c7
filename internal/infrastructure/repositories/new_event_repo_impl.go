package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gdgoc.backend/internal/domain/entities"
	domainRepos "gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/internal/infrastructure/models"
)

// NewEventRegistrationRepository implements new-event registration data operations
type NewEventRegistrationRepository struct {
	db *gorm.DB
}

// NewNewEventRepository creates a new new-event repository
func NewNewEventRepository(db *gorm.DB) *NewEventRegistrationRepository {
	return &NewEventRegistrationRepository{db: db}
}

// Create stores a registration
func (r *NewEventRegistrationRepository) Create(ctx context.Context, reg *entities.NewEventRegistration) error {
	return translateError(GetDB(ctx, r.db).Create(models.NewNewEventRegistration(reg)).Error)
}

// GetByID gets a registration by ID
func (r *NewEventRegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.NewEventRegistration, error) {
	var m models.NewEventRegistration
	if err := GetDB(ctx, r.db).Where("id = ?", id.String()).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return m.ToEntity(), nil
}

// LeaderEmailExists reports whether a team is already led by email
func (r *NewEventRegistrationRepository) LeaderEmailExists(ctx context.Context, email string) (bool, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.NewEventRegistration{}).
		Where("LOWER(leader_email) = LOWER(?)", email).
		Count(&n).Error
	return n > 0, err
}

func (r *NewEventRegistrationRepository) filtered(ctx context.Context, filter domainRepos.ListFilter) *gorm.DB {
	q := GetDB(ctx, r.db).Model(&models.NewEventRegistration{})
	q = whereSearch(q, filter.Search, "team_name", "leader_name", "leader_email", "leader_roll_number")
	return whereStatus(q, filter)
}

// List returns registrations matching the filter, newest first
func (r *NewEventRegistrationRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.NewEventRegistration, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.NewEventRegistration
	if err := page(r.filtered(ctx, filter), filter).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.NewEventRegistration, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToEntity())
	}
	return items, total, nil
}

// Stats counts registrations by status
func (r *NewEventRegistrationRepository) Stats(ctx context.Context) (*entities.StatusSummary, error) {
	db := GetDB(ctx, r.db)
	summary := &entities.StatusSummary{}
	if err := db.Model(&models.NewEventRegistration{}).Count(&summary.Total).Error; err != nil {
		return nil, err
	}
	byStatus, err := groupCount(db, &models.NewEventRegistration{}, "status")
	if err != nil {
		return nil, err
	}
	summary.ByStatus = byStatus
	return summary, nil
}

// UpdateStatus sets the status of a registration
func (r *NewEventRegistrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	result := GetDB(ctx, r.db).Model(&models.NewEventRegistration{}).
		Where("id = ?", id.String()).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	return checkAffected(result)
}

// Delete removes a registration
func (r *NewEventRegistrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.NewEventRegistration{}, "id = ?", id.String()))
}
