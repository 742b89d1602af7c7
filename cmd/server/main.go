package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"gdgoc.backend/internal/config"
	"gdgoc.backend/internal/domain/validation"
	"gdgoc.backend/internal/infrastructure/datastore"
	"gdgoc.backend/internal/infrastructure/mailer"
	"gdgoc.backend/internal/interfaces/http/handlers"
	"gdgoc.backend/internal/interfaces/http/middleware"
	"gdgoc.backend/internal/usecases"
	"gdgoc.backend/pkg/jwt"
	"gdgoc.backend/pkg/logger"
	"gdgoc.backend/pkg/redis"
)

const appName = "GDG on Campus"

var (
	loadDotenv   = godotenv.Load
	loadCfg      = config.Load
	initLog      = logger.Init
	initRedis    = redis.Init
	openStore    = datastore.Open
	newTransport = mailer.NewTransport
	runServer    = serve
	signalCtx    = func() (context.Context, context.CancelFunc) {
		return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis is optional; an empty REDIS_URL disables caching and idempotency
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()
	logger.Info(context.Background(), "Redis initialized", zap.Bool("enabled", redis.Enabled()))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	validation.Register()
	validation.SetInstitutionDomain(cfg.Forms.InstitutionEmailDomain)

	ctx, stop := signalCtx()
	defer stop()

	store, err := openStore(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Database.Driver, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn(closeCtx, "Failed to close store", zap.Error(err))
		}
	}()
	logger.Info(ctx, "Store connected", zap.String("driver", store.Driver))

	// Mail
	transport, err := newTransport(cfg.Mail)
	if err != nil {
		return fmt.Errorf("failed to configure mail transport: %w", err)
	}
	renderer, err := mailer.NewRenderer(appName, cfg.Forms.FrontendBaseURL)
	if err != nil {
		return fmt.Errorf("failed to load mail templates: %w", err)
	}
	dispatcher := mailer.NewDispatcher(transport, renderer, cfg.Mail.Workers, cfg.Mail.QueueSize)
	dispatcher.Start(ctx)
	defer func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := dispatcher.Stop(drainCtx); err != nil {
			logger.Warn(drainCtx, "Mail queue not fully drained", zap.Error(err))
		}
	}()
	logger.Info(ctx, "Mail dispatcher started", zap.String("transport", transport.Name()))

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)
	notifier := usecases.NewNotifier(dispatcher)

	// Initialize usecases
	adminUsecase := usecases.NewAdminUsecase(store.Admins, jwtService)
	contactUsecase := usecases.NewContactUsecase(store.Contacts, notifier)
	eventUsecase := usecases.NewEventUsecase(store.Events)
	recruitmentUsecase := usecases.NewRecruitmentUsecase(store.Recruitment, notifier)
	brainGamesUsecase := usecases.NewBrainGamesUsecase(store.BrainGames, notifier)
	newEventUsecase := usecases.NewNewEventUsecase(store.NewEvent, notifier)
	dashboardUsecase := usecases.NewDashboardUsecase(usecases.DashboardRepositories{
		Admins:      store.Admins,
		Contacts:    store.Contacts,
		Events:      store.Events,
		Recruitment: store.Recruitment,
		BrainGames:  store.BrainGames,
		NewEvent:    store.NewEvent,
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware("/health", "/metrics"))
	if cfg.Server.MetricsEnabled {
		r.Use(middleware.MetricsMiddleware())
		registerMetricsRoute(r)
	}

	applyCORSMiddleware(r, cfg.Server.AllowedOrigins)
	registerHealthRoute(r, handlers.NewHealthHandler(store))
	registerAPIRoutes(r, routeDeps{
		adminHandler:       handlers.NewAdminHandler(adminUsecase),
		contactHandler:     handlers.NewContactHandler(contactUsecase),
		eventHandler:       handlers.NewEventHandler(eventUsecase),
		recruitmentHandler: handlers.NewRecruitmentHandler(recruitmentUsecase),
		brainGamesHandler:  handlers.NewBrainGamesHandler(brainGamesUsecase),
		newEventHandler:    handlers.NewNewEventHandler(newEventUsecase),
		dashboardHandler:   handlers.NewDashboardHandler(dashboardUsecase),
		metaHandler:        handlers.NewMetaHandler(cfg.Cloudinary),
		authMiddleware:     middleware.AuthMiddleware(adminUsecase),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info(ctx, "GDG on Campus API starting",
		zap.String("port", cfg.Server.Port),
		zap.Int("routes", len(r.Routes())),
	)

	if err := runServer(ctx, srv, cfg.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.Info(context.Background(), "Server stopped")
	return nil
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
