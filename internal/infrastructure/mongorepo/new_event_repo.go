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

// NewEventRegistrationRepository implements new-event registration data operations on MongoDB
type NewEventRegistrationRepository struct {
	coll *mongo.Collection
}

// NewNewEventRepository creates a new new-event repository
func NewNewEventRepository(db *mongo.Database) *NewEventRegistrationRepository {
	return &NewEventRegistrationRepository{coll: db.Collection(models.NewEventTable)}
}

// Create stores a registration
func (r *NewEventRegistrationRepository) Create(ctx context.Context, reg *entities.NewEventRegistration) error {
	_, err := r.coll.InsertOne(ctx, models.NewNewEventRegistration(reg))
	return translateError(err)
}

// GetByID gets a registration by ID
func (r *NewEventRegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.NewEventRegistration, error) {
	var m models.NewEventRegistration
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&m); err != nil {
		return nil, translateError(err)
	}
	return m.ToEntity(), nil
}

// LeaderEmailExists reports whether a team is already led by email
func (r *NewEventRegistrationRepository) LeaderEmailExists(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"leader.email": equalFold(email)})
	return n > 0, err
}

// List returns registrations matching the filter, newest first
func (r *NewEventRegistrationRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.NewEventRegistration, int64, error) {
	query := withSearch(bson.M{}, filter.Search, "teamName", "leader.name", "leader.email", "leader.rollNumber")
	query = withStatus(query, filter)
	rows, total, err := findPage[models.NewEventRegistration](ctx, r.coll, query, filter)
	if err != nil {
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
	return statusSummary(ctx, r.coll)
}

// UpdateStatus sets the status of a registration
func (r *NewEventRegistrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	res, err := r.coll.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{"status": string(status), "updatedAt": time.Now()}})
	if err != nil {
		return translateError(err)
	}
	return notFoundIfZero(res.MatchedCount)
}

// Delete removes a registration
func (r *NewEventRegistrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return translateError(err)
	}
	return notFoundIfZero(res.DeletedCount)
}
