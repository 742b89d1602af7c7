package mongorepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gdgoc.backend/internal/domain/entities"
	domainRepos "gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/internal/infrastructure/models"
)

// EventRepository implements event data operations on MongoDB
type EventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(models.EventsTable)}
}

// Create creates an event
func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	_, err := r.coll.InsertOne(ctx, models.NewEvent(event))
	return translateError(err)
}

// GetByID gets an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var m models.Event
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&m); err != nil {
		return nil, translateError(err)
	}
	return m.ToEntity(), nil
}

// List returns events matching the filter, newest first
func (r *EventRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.Event, int64, error) {
	query := withSearch(bson.M{}, filter.Search, "title", "description")
	rows, total, err := findPage[models.Event](ctx, r.coll, query, filter)
	if err != nil {
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
	res, err := r.coll.UpdateOne(ctx, byID(event.ID), bson.M{"$set": bson.M{
		"title":       m.Title,
		"description": m.Description,
		"images":      m.Images,
		"updatedAt":   time.Now(),
	}})
	if err != nil {
		return translateError(err)
	}
	return notFoundIfZero(res.MatchedCount)
}

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return translateError(err)
	}
	return notFoundIfZero(res.DeletedCount)
}

// Count returns the number of events
func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
