package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gdgoc.backend/internal/domain/entities"
	domainerrors "gdgoc.backend/internal/domain/errors"
	domainRepos "gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/internal/infrastructure/models"
)

// BrainGamesRepository implements brain games registration data operations.
// Members live in their own table and are written in the same transaction.
type BrainGamesRepository struct {
	db  *gorm.DB
	uow *UnitOfWorkImpl
}

// NewBrainGamesRepository creates a new brain games repository
func NewBrainGamesRepository(db *gorm.DB) *BrainGamesRepository {
	return &BrainGamesRepository{db: db, uow: NewUnitOfWork(db)}
}

func orderedMembers(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create stores a registration together with its members
func (r *BrainGamesRepository) Create(ctx context.Context, reg *entities.BrainGamesRegistration) error {
	m := models.NewBrainGamesRegistration(reg)
	return r.uow.Do(ctx, func(ctx context.Context) error {
		db := GetDB(ctx, r.db)
		if err := db.Omit("Members").Create(m).Error; err != nil {
			return translateError(err)
		}
		if len(m.Members) == 0 {
			return nil
		}
		return translateError(db.Create(&m.Members).Error)
	})
}

// GetByID gets a registration with its members
func (r *BrainGamesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BrainGamesRegistration, error) {
	var m models.BrainGamesRegistration
	err := GetDB(ctx, r.db).Preload("Members", orderedMembers).Where("id = ?", id.String()).First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return m.ToEntity(), nil
}

// TeamNameExists compares team names case-insensitively
func (r *BrainGamesRepository) TeamNameExists(ctx context.Context, teamName string) (bool, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.BrainGamesRegistration{}).
		Where("team_name_ci = ?", strings.ToLower(strings.TrimSpace(teamName))).
		Count(&n).Error
	return n > 0, err
}

// MemberExists reports whether any email or roll number is already registered
func (r *BrainGamesRepository) MemberExists(ctx context.Context, emails, rollNumbers []string) (bool, error) {
	if len(emails) == 0 && len(rollNumbers) == 0 {
		return false, nil
	}
	q := GetDB(ctx, r.db).Model(&models.BrainGamesMember{})
	switch {
	case len(emails) > 0 && len(rollNumbers) > 0:
		q = q.Where("LOWER(email) IN ? OR LOWER(roll_number) IN ?", lowerAll(emails), lowerAll(rollNumbers))
	case len(emails) > 0:
		q = q.Where("LOWER(email) IN ?", lowerAll(emails))
	default:
		q = q.Where("LOWER(roll_number) IN ?", lowerAll(rollNumbers))
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}

func (r *BrainGamesRepository) filtered(ctx context.Context, filter domainRepos.ListFilter) *gorm.DB {
	db := GetDB(ctx, r.db)
	q := whereStatus(db.Model(&models.BrainGamesRegistration{}), filter)
	term := strings.ToLower(strings.TrimSpace(filter.Search))
	if term == "" {
		return q
	}
	like := "%" + term + "%"
	memberMatch := db.Session(&gorm.Session{NewDB: true}).
		Model(&models.BrainGamesMember{}).
		Select("registration_id").
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(roll_number) LIKE ?", like, like, like)
	return q.Where("(LOWER(team_name) LIKE ? OR id IN (?))", like, memberMatch)
}

// List returns registrations matching the filter, newest first
func (r *BrainGamesRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.BrainGamesRegistration, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.BrainGamesRegistration
	if err := page(r.filtered(ctx, filter), filter).Preload("Members", orderedMembers).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.BrainGamesRegistration, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToEntity())
	}
	return items, total, nil
}

// Stats counts registrations by status
func (r *BrainGamesRepository) Stats(ctx context.Context) (*entities.StatusSummary, error) {
	db := GetDB(ctx, r.db)
	summary := &entities.StatusSummary{}
	if err := db.Model(&models.BrainGamesRegistration{}).Count(&summary.Total).Error; err != nil {
		return nil, err
	}
	byStatus, err := groupCount(db, &models.BrainGamesRegistration{}, "status")
	if err != nil {
		return nil, err
	}
	summary.ByStatus = byStatus
	return summary, nil
}

// UpdateStatus sets the status of a registration
func (r *BrainGamesRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	result := GetDB(ctx, r.db).Model(&models.BrainGamesRegistration{}).
		Where("id = ?", id.String()).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	return checkAffected(result)
}

// Delete removes a registration and its members
func (r *BrainGamesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.uow.Do(ctx, func(ctx context.Context) error {
		db := GetDB(ctx, r.db)
		result := db.Delete(&models.BrainGamesRegistration{}, "id = ?", id.String())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrNotFound
		}
		return db.Where("registration_id = ?", id.String()).Delete(&models.BrainGamesMember{}).Error
	})
}
