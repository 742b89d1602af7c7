package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gdgoc.backend/internal/domain/entities"
	domainerrors "gdgoc.backend/internal/domain/errors"
	"gdgoc.backend/internal/interfaces/http/response"
	"gdgoc.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// AdminKey is the context key for the authenticated admin
	AdminKey = "admin"
	// AdminIDKey is the context key for the authenticated admin ID
	AdminIDKey = "adminId"
)

// Authenticator resolves a bearer token to the admin it was issued for
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.Admin, error)
}

// AuthMiddleware rejects requests without a valid admin token. The admin is
// re-read from storage on every request so deleted accounts lose access.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			logger.Warn(ctx, "Authorization header is missing", zap.String("path", c.Request.URL.Path))
			response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "authorization header is required")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			logger.Warn(ctx, "Invalid authorization format", zap.String("path", c.Request.URL.Path))
			response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "invalid authorization format, use: Bearer <token>")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
		admin, err := auth.Authenticate(ctx, token)
		if err != nil {
			logger.Warn(ctx, "Authentication failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			response.Error(c, err)
			return
		}

		c.Set(AdminKey, admin)
		c.Set(AdminIDKey, admin.ID)
		c.Request = c.Request.WithContext(context.WithValue(ctx, logger.AdminIDKey, admin.ID.String()))

		c.Next()
	}
}

// GetAdmin gets the authenticated admin from context
func GetAdmin(c *gin.Context) (*entities.Admin, bool) {
	v, exists := c.Get(AdminKey)
	if !exists {
		return nil, false
	}
	admin, ok := v.(*entities.Admin)
	return admin, ok && admin != nil
}

// GetAdminID gets the authenticated admin ID from context
func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(AdminIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
