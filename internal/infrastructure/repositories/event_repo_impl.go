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

// EventRepository implements event data operations
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates an event
func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	return translateError(GetDB(ctx, r.db).Create(models.NewEvent(event)).Error)
}

// GetByID gets an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var m models.Event
	if err := GetDB(ctx, r.db).Where("id = ?", id.String()).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return m.ToEntity(), nil
}

// List returns events matching the filter, newest first
func (r *EventRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.Event, int64, error) {
	base := func() *gorm.DB {
		q := GetDB(ctx, r.db).Model(&models.Event{})
		return whereSearch(q, filter.Search, "title", "description")
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Event
	if err := page(base(), filter).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Event, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToEntity())
	}
	return items, total, nil
}

// Update replaces the editable fields of an event
func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	m := models.NewEvent(event)
	m.UpdatedAt = time.Now()
	result := GetDB(ctx, r.db).Model(&models.Event{}).
		Where("id = ?", m.ID).
		Select("title", "description", "images", "updated_at").
		Updates(m)
	return checkAffected(result)
}

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.Event{}, "id = ?", id.String()))
}

// Count returns the number of events
func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.Event{}).Count(&n).Error
	return n, err
}
