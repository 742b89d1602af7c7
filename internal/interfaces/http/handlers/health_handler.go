package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gdgoc.backend/pkg/logger"
	"gdgoc.backend/pkg/redis"
)

const (
	// ServiceName is reported by the health endpoint
	ServiceName = "gdgoc-backend"
	// ServiceVersion is reported by the health endpoint
	ServiceVersion = "1.0.0"

	healthCheckTimeout = 2 * time.Second
)

var pingRedis = redis.Ping

// Pinger checks that a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and dependency status
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health pings the store and Redis. A failing store answers 503.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	body := gin.H{
		"status":   "ok",
		"service":  ServiceName,
		"version":  ServiceVersion,
		"database": "up",
		"redis":    "disabled",
	}

	if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			logger.Warn(ctx, "Health check: database unreachable", zap.Error(err))
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			body["database"] = "down"
		}
	}

	if redis.Enabled() {
		body["redis"] = "up"
		if err := pingRedis(ctx); err != nil {
			// Redis only backs caches, so it does not fail the probe
			logger.Warn(ctx, "Health check: redis unreachable", zap.Error(err))
			body["redis"] = "down"
		}
	}

	c.JSON(status, body)
}
