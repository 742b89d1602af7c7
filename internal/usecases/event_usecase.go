package usecases

import (
	"context"

	"github.com/google/uuid"

	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/internal/domain/repositories"
)

// EventUsecase handles community events
type EventUsecase struct {
	eventRepo repositories.EventRepository
}

// NewEventUsecase creates a new event usecase
func NewEventUsecase(eventRepo repositories.EventRepository) *EventUsecase {
	return &EventUsecase{eventRepo: eventRepo}
}

// Create stores an event
func (u *EventUsecase) Create(ctx context.Context, input *entities.EventInput) (*entities.Event, error) {
	ts := now()
	event := &entities.Event{
		ID:          newID(),
		Title:       trim(input.Title),
		Description: trim(input.Description),
		Images:      cleanImages(input.Images),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := u.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetByID gets an event by ID
func (u *EventUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	event, err := u.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "event")
	}
	return event, nil
}

// List returns a page of events, newest first
func (u *EventUsecase) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.Event, int64, error) {
	filter.Search = trim(filter.Search)
	return u.eventRepo.List(ctx, filter)
}

// Latest returns the most recent events. A non-positive limit falls back to
// DefaultLatestEvents.
func (u *EventUsecase) Latest(ctx context.Context, limit int) ([]*entities.Event, error) {
	if limit <= 0 {
		limit = DefaultLatestEvents
	}
	if limit > MaxLatestEvents {
		limit = MaxLatestEvents
	}
	events, _, err := u.eventRepo.List(ctx, repositories.ListFilter{Page: 1, Limit: limit})
	return events, err
}

// Update replaces the editable fields of an event
func (u *EventUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.EventInput) (*entities.Event, error) {
	event, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Title = trim(input.Title)
	event.Description = trim(input.Description)
	event.Images = cleanImages(input.Images)
	event.UpdatedAt = now()

	if err := u.eventRepo.Update(ctx, event); err != nil {
		return nil, notFound(err, "event")
	}
	return event, nil
}

// Delete removes an event
func (u *EventUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return notFound(u.eventRepo.Delete(ctx, id), "event")
}

func cleanImages(images []string) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if img = trim(img); img != "" {
			out = append(out, img)
		}
	}
	return out
}
