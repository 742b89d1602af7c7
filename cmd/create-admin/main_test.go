package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdgoc.backend/internal/config"
	"gdgoc.backend/internal/domain/entities"
)

type registrarFunc func(ctx context.Context, input *entities.CreateAdminInput) (*entities.Admin, error)

func (f registrarFunc) Register(ctx context.Context, input *entities.CreateAdminInput) (*entities.Admin, error) {
	return f(ctx, input)
}

func sqliteConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: fmt.Sprintf("file:create_admin_%s?mode=memory&cache=shared", uuid.NewString()),
		},
	}
}

func testDeps(out *bytes.Buffer) createAdminDeps {
	return createAdminDeps{
		loadEnv: func() error { return errors.New("no .env") },
		loadCfg: sqliteConfig,
		getenv:  func(string) string { return "" },
		out:     out,
	}
}

func TestResolvePassword(t *testing.T) {
	gen := func() (string, error) { return "generated-pw", nil }

	pw, generated, err := resolvePassword("from-flag", func(string) string { return "from-env" }, gen)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", pw)
	assert.False(t, generated)

	pw, generated, err = resolvePassword("", func(string) string { return "from-env" }, gen)
	require.NoError(t, err)
	assert.Equal(t, "from-env", pw)
	assert.False(t, generated)

	pw, generated, err = resolvePassword("", func(string) string { return "" }, gen)
	require.NoError(t, err)
	assert.Equal(t, "generated-pw", pw)
	assert.True(t, generated)

	_, _, err = resolvePassword("", func(string) string { return "" }, func() (string, error) {
		return "", errors.New("entropy")
	})
	assert.Error(t, err)
}

func TestRunCreateAdmin_RequiresUsername(t *testing.T) {
	var out bytes.Buffer
	err := runCreateAdmin([]string{"-password", "password123"}, testDeps(&out))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--username")
}

func TestRunCreateAdmin_ShortPassword(t *testing.T) {
	var out bytes.Buffer
	err := runCreateAdmin([]string{"-username", "root", "-password", "short"}, testDeps(&out))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8")
}

func TestRunCreateAdmin_BadFlag(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, runCreateAdmin([]string{"-nope"}, testDeps(&out)))
}

func TestRunCreateAdmin_PrepareError(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(&out)
	deps.prepare = func(context.Context, *config.Config) (adminRegistrar, func(context.Context) error, error) {
		return nil, nil, errors.New("db down")
	}

	err := runCreateAdmin([]string{"-username", "root", "-password", "password123"}, deps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestRunCreateAdmin_RegisterError(t *testing.T) {
	var out bytes.Buffer
	closed := false
	deps := testDeps(&out)
	deps.prepare = func(context.Context, *config.Config) (adminRegistrar, func(context.Context) error, error) {
		return registrarFunc(func(context.Context, *entities.CreateAdminInput) (*entities.Admin, error) {
			return nil, errors.New("username already exists")
		}), func(context.Context) error { closed = true; return nil }, nil
	}

	err := runCreateAdmin([]string{"-username", "root", "-password", "password123"}, deps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed creating admin")
	assert.True(t, closed)
}

func TestRunCreateAdmin_GeneratedPasswordPrinted(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(&out)
	deps.tempPassword = func() (string, error) { return "temporary-pass", nil }

	var got *entities.CreateAdminInput
	deps.prepare = func(context.Context, *config.Config) (adminRegistrar, func(context.Context) error, error) {
		return registrarFunc(func(_ context.Context, input *entities.CreateAdminInput) (*entities.Admin, error) {
			got = input
			return &entities.Admin{ID: uuid.New(), Username: input.Username}, nil
		}), nil, nil
	}

	require.NoError(t, runCreateAdmin([]string{"-username", "lead"}, deps))
	require.NotNil(t, got)
	assert.Equal(t, "lead", got.Name)
	assert.Equal(t, "temporary-pass", got.Password)
	assert.Contains(t, out.String(), "PASSWORD=temporary-pass")
}

func TestRunCreateAdmin_SQLiteStore(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(&out)

	err := runCreateAdmin([]string{"-username", "Root", "-name", "Chapter Lead", "-password", "password123"}, deps)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Created admin account")
	assert.Contains(t, out.String(), "username=root")
	assert.NotContains(t, out.String(), "PASSWORD=")
}
