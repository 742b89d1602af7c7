package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdgoc.backend/internal/domain/entities"
	domainerrors "gdgoc.backend/internal/domain/errors"
	"gdgoc.backend/pkg/logger"
)

type stubAuthenticator struct {
	admin *entities.Admin
	err   error
	token string
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (*entities.Admin, error) {
	s.token = token
	return s.admin, s.err
}

func newAuthRouter(auth Authenticator, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(auth), handler)
	return r
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		authErr error
		message string
	}{
		{name: "missing header", header: "", message: "authorization header is required"},
		{name: "wrong scheme", header: "Basic abc", message: "invalid authorization format, use: Bearer <token>"},
		{name: "invalid token", header: "Bearer bad", authErr: domainerrors.Unauthorized("invalid token"), message: "invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			r := newAuthRouter(&stubAuthenticator{err: tt.authErr}, func(c *gin.Context) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(AuthorizationHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body["message"])
			assert.Equal(t, domainerrors.CodeUnauthorized, body["code"])
		})
	}
}

func TestAuthMiddleware_SetsAdmin(t *testing.T) {
	admin := &entities.Admin{ID: uuid.New(), Username: "lead"}
	auth := &stubAuthenticator{admin: admin}

	r := newAuthRouter(auth, func(c *gin.Context) {
		got, ok := GetAdmin(c)
		require.True(t, ok)
		assert.Equal(t, admin, got)

		id, ok := GetAdminID(c)
		require.True(t, ok)
		assert.Equal(t, admin.ID, id)

		assert.Equal(t, admin.ID.String(), c.Request.Context().Value(logger.AdminIDKey))
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, "Bearer token-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "token-123", auth.token)
}

func TestGetAdmin_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetAdmin(c)
	assert.False(t, ok)
	_, ok = GetAdminID(c)
	assert.False(t, ok)
}
