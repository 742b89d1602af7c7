package mongorepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gdgoc.backend/internal/infrastructure/models"
)

func unique(keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
}

func plain(keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys}
}

var newestFirst = plain(bson.D{{Key: "createdAt", Value: -1}})

// collectionIndexes lists the indexes backing uniqueness rules and list queries
func collectionIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		models.AdminsTable: {
			unique(bson.D{{Key: "username", Value: 1}}),
		},
		models.ContactsTable: {newestFirst},
		models.EventsTable:   {newestFirst},
		models.RecruitmentTable: {
			unique(bson.D{{Key: "email", Value: 1}}),
			unique(bson.D{{Key: "rollNumber", Value: 1}}),
			plain(bson.D{{Key: "status", Value: 1}}),
			plain(bson.D{{Key: "selectedTeam", Value: 1}}),
			newestFirst,
		},
		models.BrainGamesTable: {
			unique(bson.D{{Key: "teamNameCI", Value: 1}}),
			unique(bson.D{{Key: "members.email", Value: 1}}),
			unique(bson.D{{Key: "members.rollNumber", Value: 1}}),
			plain(bson.D{{Key: "status", Value: 1}}),
			newestFirst,
		},
		models.NewEventTable: {
			unique(bson.D{{Key: "leader.email", Value: 1}}),
			plain(bson.D{{Key: "status", Value: 1}}),
			newestFirst,
		},
	}
}

// indexOrder keeps index creation deterministic
var indexOrder = []string{
	models.AdminsTable,
	models.ContactsTable,
	models.EventsTable,
	models.RecruitmentTable,
	models.BrainGamesTable,
	models.NewEventTable,
}

// EnsureIndexes creates every index the repositories rely on. Existing
// indexes with the same keys and options are left untouched by the server.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	all := collectionIndexes()
	for _, name := range indexOrder {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, all[name]); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
