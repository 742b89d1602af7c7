package mongorepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/internal/infrastructure/models"
)

// AdminRepository implements admin data operations on MongoDB
type AdminRepository struct {
	coll *mongo.Collection
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: db.Collection(models.AdminsTable)}
}

// Create creates a new admin
func (r *AdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	_, err := r.coll.InsertOne(ctx, models.NewAdmin(admin))
	return translateError(err)
}

func (r *AdminRepository) findOne(ctx context.Context, filter bson.M) (*entities.Admin, error) {
	var m models.Admin
	if err := r.coll.FindOne(ctx, filter).Decode(&m); err != nil {
		return nil, translateError(err)
	}
	return m.ToEntity(), nil
}

// GetByID gets an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error) {
	return r.findOne(ctx, byID(id))
}

// GetByUsername gets an admin by username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*entities.Admin, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// List lists admins with optional search filter
func (r *AdminRepository) List(ctx context.Context, search string) ([]*entities.Admin, error) {
	filter := withSearch(bson.M{}, search, "name", "username")
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var rows []models.Admin
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	admins := make([]*entities.Admin, 0, len(rows))
	for i := range rows {
		admins = append(admins, rows[i].ToEntity())
	}
	return admins, nil
}

// Update updates the profile fields of an admin
func (r *AdminRepository) Update(ctx context.Context, admin *entities.Admin) error {
	res, err := r.coll.UpdateOne(ctx, byID(admin.ID), bson.M{"$set": bson.M{
		"name":         admin.Name,
		"username":     admin.Username,
		"profileImage": admin.ProfileImage.Ptr(),
		"updatedAt":    time.Now(),
	}})
	if err != nil {
		return translateError(err)
	}
	return notFoundIfZero(res.MatchedCount)
}

// UpdatePassword replaces the password hash
func (r *AdminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	res, err := r.coll.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{
		"passwordHash": passwordHash,
		"updatedAt":    time.Now(),
	}})
	if err != nil {
		return translateError(err)
	}
	return notFoundIfZero(res.MatchedCount)
}

// Delete removes an admin
func (r *AdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return translateError(err)
	}
	return notFoundIfZero(res.DeletedCount)
}

// Count returns the number of admins
func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
