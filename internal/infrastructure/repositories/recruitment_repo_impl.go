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

// RecruitmentRepository implements recruitment application data operations
type RecruitmentRepository struct {
	db *gorm.DB
}

// NewRecruitmentRepository creates a new recruitment repository
func NewRecruitmentRepository(db *gorm.DB) *RecruitmentRepository {
	return &RecruitmentRepository{db: db}
}

// Create stores an application
func (r *RecruitmentRepository) Create(ctx context.Context, app *entities.RecruitmentApplication) error {
	return translateError(GetDB(ctx, r.db).Create(models.NewRecruitmentApplication(app)).Error)
}

// GetByID gets an application by ID
func (r *RecruitmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.RecruitmentApplication, error) {
	var m models.RecruitmentApplication
	if err := GetDB(ctx, r.db).Where("id = ?", id.String()).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return m.ToEntity(), nil
}

// FindByEmailOrRoll returns an application that already uses email or rollNumber
func (r *RecruitmentRepository) FindByEmailOrRoll(ctx context.Context, email, rollNumber string) (*entities.RecruitmentApplication, error) {
	var m models.RecruitmentApplication
	err := GetDB(ctx, r.db).
		Where("LOWER(email) = LOWER(?) OR LOWER(roll_number) = LOWER(?)", email, rollNumber).
		First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return m.ToEntity(), nil
}

func (r *RecruitmentRepository) filtered(ctx context.Context, filter domainRepos.ListFilter) *gorm.DB {
	q := GetDB(ctx, r.db).Model(&models.RecruitmentApplication{})
	q = whereSearch(q, filter.Search, "full_name", "email", "roll_number")
	q = whereStatus(q, filter)
	if filter.Team != "" {
		q = q.Where("selected_team = ?", filter.Team)
	}
	if filter.Role != "" {
		q = q.Where("selected_role = ?", string(filter.Role))
	}
	return q
}

// List returns applications matching the filter, newest first
func (r *RecruitmentRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.RecruitmentApplication, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.RecruitmentApplication
	if err := page(r.filtered(ctx, filter), filter).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.RecruitmentApplication, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToEntity())
	}
	return items, total, nil
}

// Emails returns the email of every application matching the filter
func (r *RecruitmentRepository) Emails(ctx context.Context, filter domainRepos.ListFilter) ([]string, error) {
	emails := []string{}
	err := r.filtered(ctx, filter).Order("created_at DESC").Pluck("email", &emails).Error
	return emails, err
}

// Stats counts applications by status, team and role
func (r *RecruitmentRepository) Stats(ctx context.Context) (*entities.RecruitmentStats, error) {
	stats := &entities.RecruitmentStats{}
	db := GetDB(ctx, r.db)
	if err := db.Model(&models.RecruitmentApplication{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	var err error
	if stats.ByStatus, err = groupCount(db, &models.RecruitmentApplication{}, "status"); err != nil {
		return nil, err
	}
	if stats.ByTeam, err = groupCount(db, &models.RecruitmentApplication{}, "selected_team"); err != nil {
		return nil, err
	}
	if stats.ByRole, err = groupCount(db, &models.RecruitmentApplication{}, "selected_role"); err != nil {
		return nil, err
	}
	return stats, nil
}

// UpdateStatus sets the status of one application
func (r *RecruitmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	result := GetDB(ctx, r.db).Model(&models.RecruitmentApplication{}).
		Where("id = ?", id.String()).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	return checkAffected(result)
}

// BulkUpdateStatus sets the status of every listed application and returns
// the number of rows matched.
func (r *RecruitmentRepository) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status entities.ApplicationStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}
	result := GetDB(ctx, r.db).Model(&models.RecruitmentApplication{}).
		Where("id IN ?", keys).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	return result.RowsAffected, result.Error
}

// Delete removes an application
func (r *RecruitmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.RecruitmentApplication{}, "id = ?", id.String()))
}
