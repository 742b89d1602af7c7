package mongorepo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gdgoc.backend/internal/domain/entities"
	domainRepos "gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/internal/infrastructure/models"
)

// BrainGamesRepository implements brain games registration data operations on
// MongoDB. Members are embedded in the registration document.
type BrainGamesRepository struct {
	coll *mongo.Collection
}

// NewBrainGamesRepository creates a new brain games repository
func NewBrainGamesRepository(db *mongo.Database) *BrainGamesRepository {
	return &BrainGamesRepository{coll: db.Collection(models.BrainGamesTable)}
}

// Create stores a registration with its members
func (r *BrainGamesRepository) Create(ctx context.Context, reg *entities.BrainGamesRegistration) error {
	_, err := r.coll.InsertOne(ctx, models.NewBrainGamesRegistration(reg))
	return translateError(err)
}

// GetByID gets a registration by ID
func (r *BrainGamesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BrainGamesRegistration, error) {
	var m models.BrainGamesRegistration
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&m); err != nil {
		return nil, translateError(err)
	}
	return m.ToEntity(), nil
}

// TeamNameExists compares team names case-insensitively
func (r *BrainGamesRepository) TeamNameExists(ctx context.Context, teamName string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"teamNameCI": strings.ToLower(strings.TrimSpace(teamName))})
	return n > 0, err
}

// MemberExists reports whether any email or roll number is already registered
func (r *BrainGamesRepository) MemberExists(ctx context.Context, emails, rollNumbers []string) (bool, error) {
	or := bson.A{}
	if len(emails) > 0 {
		or = append(or, bson.M{"members.email": bson.M{"$in": lowerAll(emails)}})
	}
	if len(rollNumbers) > 0 {
		or = append(or, bson.M{"members.rollNumber": bson.M{"$in": lowerAll(rollNumbers)}})
	}
	if len(or) == 0 {
		return false, nil
	}
	n, err := r.coll.CountDocuments(ctx, bson.M{"$or": or})
	return n > 0, err
}

// List returns registrations matching the filter, newest first
func (r *BrainGamesRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.BrainGamesRegistration, int64, error) {
	query := withSearch(bson.M{}, filter.Search, "teamName", "members.name", "members.email", "members.rollNumber")
	query = withStatus(query, filter)
	rows, total, err := findPage[models.BrainGamesRegistration](ctx, r.coll, query, filter)
	if err != nil {
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
	return statusSummary(ctx, r.coll)
}

// UpdateStatus sets the status of a registration
func (r *BrainGamesRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	res, err := r.coll.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{"status": string(status), "updatedAt": time.Now()}})
	if err != nil {
		return translateError(err)
	}
	return notFoundIfZero(res.MatchedCount)
}

// Delete removes a registration
func (r *BrainGamesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return translateError(err)
	}
	return notFoundIfZero(res.DeletedCount)
}
