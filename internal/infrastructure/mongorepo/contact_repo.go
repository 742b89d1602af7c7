package mongorepo

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gdgoc.backend/internal/domain/entities"
	domainRepos "gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/internal/infrastructure/models"
)

// ContactRepository implements contact data operations on MongoDB
type ContactRepository struct {
	coll *mongo.Collection
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(models.ContactsTable)}
}

// Create stores a contact message
func (r *ContactRepository) Create(ctx context.Context, contact *entities.Contact) error {
	_, err := r.coll.InsertOne(ctx, models.NewContact(contact))
	return translateError(err)
}

// GetByID gets a contact message by ID
func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error) {
	var m models.Contact
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&m); err != nil {
		return nil, translateError(err)
	}
	return m.ToEntity(), nil
}

// List returns a page of contact messages, newest first
func (r *ContactRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.Contact, int64, error) {
	query := withSearch(bson.M{}, filter.Search, "name", "email", "roll")
	rows, total, err := findPage[models.Contact](ctx, r.coll, query, filter)
	if err != nil {
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
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return translateError(err)
	}
	return notFoundIfZero(res.DeletedCount)
}

// Count returns the number of contact messages
func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
