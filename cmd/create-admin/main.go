package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"gdgoc.backend/internal/config"
	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/internal/infrastructure/datastore"
	"gdgoc.backend/internal/usecases"
	"gdgoc.backend/pkg/crypto"
)

const openTimeout = 15 * time.Second

type adminRegistrar interface {
	Register(ctx context.Context, input *entities.CreateAdminInput) (*entities.Admin, error)
}

type createAdminDeps struct {
	loadEnv      func() error
	loadCfg      func() *config.Config
	prepare      func(ctx context.Context, cfg *config.Config) (adminRegistrar, func(context.Context) error, error)
	tempPassword func() (string, error)
	getenv       func(string) string
	out          io.Writer
}

func defaultCreateAdminDeps() createAdminDeps {
	return createAdminDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(ctx context.Context, cfg *config.Config) (adminRegistrar, func(context.Context) error, error) {
			store, err := datastore.Open(ctx, cfg.Database)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to open %s store: %w", cfg.Database.Driver, err)
			}
			// Register never issues tokens, so no JWT service is needed
			return usecases.NewAdminUsecase(store.Admins, nil), store.Close, nil
		},
		tempPassword: crypto.GenerateTemporaryPassword,
		getenv:       os.Getenv,
		out:          os.Stdout,
	}
}

// resolvePassword prefers the flag, then ADMIN_PASSWORD, then a generated one
func resolvePassword(flagValue string, getenv func(string) string, generate func() (string, error)) (string, bool, error) {
	if flagValue != "" {
		return flagValue, false, nil
	}
	if env := getenv("ADMIN_PASSWORD"); env != "" {
		return env, false, nil
	}
	pw, err := generate()
	if err != nil {
		return "", false, err
	}
	return pw, true, nil
}

func runCreateAdmin(args []string, deps createAdminDeps) error {
	def := defaultCreateAdminDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.prepare == nil {
		deps.prepare = def.prepare
	}
	if deps.tempPassword == nil {
		deps.tempPassword = def.tempPassword
	}
	if deps.getenv == nil {
		deps.getenv = def.getenv
	}
	if deps.out == nil {
		deps.out = def.out
	}

	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	usernameFlag := fs.String("username", "", "admin username (required)")
	nameFlag := fs.String("name", "", "display name (defaults to username)")
	passwordFlag := fs.String("password", "", "password (falls back to ADMIN_PASSWORD, else generated)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	username := strings.TrimSpace(*usernameFlag)
	if username == "" {
		return fmt.Errorf("--username is required")
	}
	name := strings.TrimSpace(*nameFlag)
	if name == "" {
		name = username
	}

	password, generated, err := resolvePassword(*passwordFlag, deps.getenv, deps.tempPassword)
	if err != nil {
		return err
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := deps.loadCfg()

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	registrar, closeFn, err := deps.prepare(ctx, cfg)
	if err != nil {
		return err
	}
	if closeFn != nil {
		defer func() { _ = closeFn(context.Background()) }()
	}

	admin, err := registrar.Register(ctx, &entities.CreateAdminInput{
		Name:     name,
		Username: username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed creating admin: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Created admin account")
	_, _ = fmt.Fprintf(deps.out, "admin_id=%s\n", admin.ID.String())
	_, _ = fmt.Fprintf(deps.out, "username=%s\n", admin.Username)
	if generated {
		_, _ = fmt.Fprintf(deps.out, "PASSWORD=%s\n", password)
	}
	return nil
}

func main() {
	if err := runCreateAdmin(os.Args[1:], defaultCreateAdminDeps()); err != nil {
		log.Fatal(err)
	}
}
