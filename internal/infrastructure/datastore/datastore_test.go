package datastore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"gorm.io/gorm"

	"gdgoc.backend/internal/config"
	"gdgoc.backend/internal/domain/entities"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: fmt.Sprintf("file:datastore_%d?mode=memory&cache=shared", time.Now().UnixNano()),
	}
	store, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, store.Driver)
	require.NoError(t, store.Ping(context.Background()))

	now := time.Now()
	admin := &entities.Admin{ID: uuid.New(), Name: "Root", Username: "root", PasswordHash: "h", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Admins.Create(context.Background(), admin))
	n, err := store.Admins.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, store.Close(context.Background()))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestOpen_SQLOpenError(t *testing.T) {
	orig := openGorm
	t.Cleanup(func() { openGorm = orig })
	openGorm = func(gorm.Dialector) (*gorm.DB, error) { return nil, errors.New("no db") }

	_, err := Open(context.Background(), config.DatabaseConfig{Driver: config.DriverPostgres, Host: "localhost", Port: 5432})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open postgres")
}

func TestOpen_MongoConnectError(t *testing.T) {
	orig := connectMongo
	t.Cleanup(func() { connectMongo = orig })
	connectMongo = func(context.Context, string) (*mongo.Client, error) { return nil, errors.New("refused") }

	_, err := Open(context.Background(), config.DatabaseConfig{Driver: config.DriverMongo, MongoURI: "mongodb://nowhere"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect mongo")
}

func TestNewMongoStore_Ping(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ping", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, mt.DB)
		assert.Equal(mt, config.DriverMongo, store.Driver)
		assert.NotNil(mt, store.Recruitment)

		mt.AddMockResponses(mtest.CreateSuccessResponse())
		require.NoError(mt, store.Ping(context.Background()))
	})
}

func TestStore_NilHooks(t *testing.T) {
	s := &Store{}
	assert.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, s.Close(context.Background()))
}
