package mongorepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gdgoc.backend/internal/domain/entities"
	domainRepos "gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/internal/infrastructure/models"
)

// RecruitmentRepository implements recruitment application data operations on MongoDB
type RecruitmentRepository struct {
	coll *mongo.Collection
}

// NewRecruitmentRepository creates a new recruitment repository
func NewRecruitmentRepository(db *mongo.Database) *RecruitmentRepository {
	return &RecruitmentRepository{coll: db.Collection(models.RecruitmentTable)}
}

// Create stores an application
func (r *RecruitmentRepository) Create(ctx context.Context, app *entities.RecruitmentApplication) error {
	_, err := r.coll.InsertOne(ctx, models.NewRecruitmentApplication(app))
	return translateError(err)
}

func (r *RecruitmentRepository) findOne(ctx context.Context, filter bson.M) (*entities.RecruitmentApplication, error) {
	var m models.RecruitmentApplication
	if err := r.coll.FindOne(ctx, filter).Decode(&m); err != nil {
		return nil, translateError(err)
	}
	return m.ToEntity(), nil
}

// GetByID gets an application by ID
func (r *RecruitmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.RecruitmentApplication, error) {
	return r.findOne(ctx, byID(id))
}

// FindByEmailOrRoll returns an application that already uses email or rollNumber
func (r *RecruitmentRepository) FindByEmailOrRoll(ctx context.Context, email, rollNumber string) (*entities.RecruitmentApplication, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": equalFold(email)},
		bson.M{"rollNumber": equalFold(rollNumber)},
	}})
}

func recruitmentQuery(filter domainRepos.ListFilter) bson.M {
	query := withSearch(bson.M{}, filter.Search, "fullName", "email", "rollNumber")
	query = withStatus(query, filter)
	if filter.Team != "" {
		query["selectedTeam"] = filter.Team
	}
	if filter.Role != "" {
		query["selectedRole"] = string(filter.Role)
	}
	return query
}

// List returns applications matching the filter, newest first
func (r *RecruitmentRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.RecruitmentApplication, int64, error) {
	rows, total, err := findPage[models.RecruitmentApplication](ctx, r.coll, recruitmentQuery(filter), filter)
	if err != nil {
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
	opts := options.Find().
		SetProjection(bson.M{"email": 1}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, recruitmentQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		Email string `bson:"email"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	emails := make([]string, 0, len(rows))
	for _, row := range rows {
		emails = append(emails, row.Email)
	}
	return emails, nil
}

type recruitmentFacet struct {
	Total    []totalCount `bson:"total"`
	ByStatus []labelCount `bson:"byStatus"`
	ByTeam   []labelCount `bson:"byTeam"`
	ByRole   []labelCount `bson:"byRole"`
}

// Stats counts applications by status, team and role
func (r *RecruitmentRepository) Stats(ctx context.Context) (*entities.RecruitmentStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.M{
			"total":    bson.A{bson.M{"$count": "n"}},
			"byStatus": groupStage("status"),
			"byTeam":   groupStage("selectedTeam"),
			"byRole":   groupStage("selectedRole"),
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var out []recruitmentFacet
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}

	stats := &entities.RecruitmentStats{
		ByStatus: entities.StatusCounts{},
		ByTeam:   entities.StatusCounts{},
		ByRole:   entities.StatusCounts{},
	}
	if len(out) == 0 {
		return stats, nil
	}
	if len(out[0].Total) > 0 {
		stats.Total = out[0].Total[0].N
	}
	stats.ByStatus = toCounts(out[0].ByStatus)
	stats.ByTeam = toCounts(out[0].ByTeam)
	stats.ByRole = toCounts(out[0].ByRole)
	return stats, nil
}

// UpdateStatus sets the status of one application
func (r *RecruitmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	res, err := r.coll.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{"status": string(status), "updatedAt": time.Now()}})
	if err != nil {
		return translateError(err)
	}
	return notFoundIfZero(res.MatchedCount)
}

// BulkUpdateStatus sets the status of every listed application and returns
// the number of documents matched.
func (r *RecruitmentRepository) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status entities.ApplicationStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	keys := make(bson.A, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": keys}},
		bson.M{"$set": bson.M{"status": string(status), "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes an application
func (r *RecruitmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return translateError(err)
	}
	return notFoundIfZero(res.DeletedCount)
}
