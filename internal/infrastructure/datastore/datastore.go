package datastore

import (
	"context"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gdgoc.backend/internal/config"
	domainRepos "gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/internal/infrastructure/models"
	"gdgoc.backend/internal/infrastructure/mongorepo"
	"gdgoc.backend/internal/infrastructure/repositories"
)

const connectTimeout = 10 * time.Second

var (
	connectMongo = func(ctx context.Context, uri string) (*mongo.Client, error) {
		return mongo.Connect(ctx, options.Client().ApplyURI(uri))
	}
	openGorm = func(dialector gorm.Dialector) (*gorm.DB, error) {
		return gorm.Open(dialector, &gorm.Config{
			TranslateError: true,
			PrepareStmt:    false,
		})
	}
	ensureIndexes = mongorepo.EnsureIndexes
)

// Store bundles the repositories of one storage backend
type Store struct {
	Driver      string
	Admins      domainRepos.AdminRepository
	Contacts    domainRepos.ContactRepository
	Events      domainRepos.EventRepository
	Recruitment domainRepos.RecruitmentRepository
	BrainGames  domainRepos.BrainGamesRepository
	NewEvent    domainRepos.NewEventRegistrationRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping checks that the backend is reachable
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the underlying connections
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the backend selected by cfg.Driver and prepares its schema
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		return openMongo(ctx, cfg)
	case config.DriverPostgres:
		// lib/pq is registered as "postgres"; simple protocol keeps poolers happy
		return openSQL(config.DriverPostgres, postgres.New(postgres.Config{
			DriverName:           "postgres",
			DSN:                  cfg.URL(),
			PreferSimpleProtocol: true,
		}))
	case config.DriverSQLite:
		return openSQL(config.DriverSQLite, sqlite.Open(cfg.SQLitePath))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openMongo(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := connectMongo(ctx, cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(cfg.MongoDatabase)
	if err := ensureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return NewMongoStore(client, db), nil
}

func openSQL(driver string, dialector gorm.Dialector) (*Store, error) {
	db, err := openGorm(dialector)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", driver, err)
	}
	store := NewGormStore(db)
	store.Driver = driver
	return store, nil
}

// NewMongoStore builds a Store on an already connected client
func NewMongoStore(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		Driver:      config.DriverMongo,
		Admins:      mongorepo.NewAdminRepository(db),
		Contacts:    mongorepo.NewContactRepository(db),
		Events:      mongorepo.NewEventRepository(db),
		Recruitment: mongorepo.NewRecruitmentRepository(db),
		BrainGames:  mongorepo.NewBrainGamesRepository(db),
		NewEvent:    mongorepo.NewNewEventRepository(db),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: client.Disconnect,
	}
}

// NewGormStore builds a Store on a migrated GORM connection
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Driver:      db.Dialector.Name(),
		Admins:      repositories.NewAdminRepository(db),
		Contacts:    repositories.NewContactRepository(db),
		Events:      repositories.NewEventRepository(db),
		Recruitment: repositories.NewRecruitmentRepository(db),
		BrainGames:  repositories.NewBrainGamesRepository(db),
		NewEvent:    repositories.NewNewEventRepository(db),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}
