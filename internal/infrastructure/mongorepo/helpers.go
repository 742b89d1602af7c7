package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gdgoc.backend/internal/domain/entities"
	domainerrors "gdgoc.backend/internal/domain/errors"
	domainRepos "gdgoc.backend/internal/domain/repositories"
)

// translateError maps driver errors to domain sentinels
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domainerrors.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", domainerrors.ErrAlreadyExists, err)
	}
	return err
}

// containsFold matches values containing term, ignoring case
func containsFold(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// equalFold matches values equal to term, ignoring case
func equalFold(term string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(strings.TrimSpace(term)) + "$", Options: "i"}
}

// withSearch adds a case-insensitive "contains" match over fields
func withSearch(filter bson.M, search string, fields ...string) bson.M {
	term := strings.TrimSpace(search)
	if term == "" || len(fields) == 0 {
		return filter
	}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: containsFold(term)})
	}
	filter["$or"] = or
	return filter
}

// withStatus filters on status when set
func withStatus(filter bson.M, f domainRepos.ListFilter) bson.M {
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	return filter
}

// pageOptions sorts newest first and applies the filter's offset/limit
func pageOptions(f domainRepos.ListFilter) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if f.Limit > 0 {
		opts.SetSkip(int64(f.Offset())).SetLimit(int64(f.Limit))
	}
	return opts
}

// findPage counts and fetches one page of documents
func findPage[M any](ctx context.Context, coll *mongo.Collection, filter bson.M, f domainRepos.ListFilter) ([]M, int64, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cur, err := coll.Find(ctx, filter, pageOptions(f))
	if err != nil {
		return nil, 0, err
	}
	rows := []M{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func byID(id fmt.Stringer) bson.M {
	return bson.M{"_id": id.String()}
}

// notFoundIfZero turns a write that matched nothing into ErrNotFound
func notFoundIfZero(matched int64) error {
	if matched == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

type labelCount struct {
	Label string `bson:"_id"`
	Count int64  `bson:"count"`
}

type totalCount struct {
	N int64 `bson:"n"`
}

func groupStage(field string) bson.A {
	return bson.A{bson.M{"$group": bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}}}
}

func toCounts(rows []labelCount) entities.StatusCounts {
	out := make(entities.StatusCounts, len(rows))
	for _, r := range rows {
		out[r.Label] = r.Count
	}
	return out
}

type summaryFacet struct {
	Total    []totalCount `bson:"total"`
	ByStatus []labelCount `bson:"byStatus"`
}

// statusSummary aggregates the collection total and per-status counts in one round trip
func statusSummary(ctx context.Context, coll *mongo.Collection) (*entities.StatusSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.M{
			"total":    bson.A{bson.M{"$count": "n"}},
			"byStatus": groupStage("status"),
		}}},
	}
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var out []summaryFacet
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	summary := &entities.StatusSummary{ByStatus: entities.StatusCounts{}}
	if len(out) == 0 {
		return summary, nil
	}
	if len(out[0].Total) > 0 {
		summary.Total = out[0].Total[0].N
	}
	summary.ByStatus = toCounts(out[0].ByStatus)
	return summary, nil
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}
