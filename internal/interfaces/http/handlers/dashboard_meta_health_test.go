package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdgoc.backend/internal/config"
	"gdgoc.backend/internal/domain/validation"
)

func TestDashboardHandler_Stats(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/contact", validContact(), false).Code)
	createEvent(t, env, "Devfest")
	submitApplication(t, env, validApplication("a@itu.edu.pk", "bscs23080"))

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/dashboard", nil, false).Code)

	w := env.do(t, http.MethodGet, "/api/dashboard", nil, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stats struct {
		Admins      int64 `json:"admins"`
		Contacts    int64 `json:"contacts"`
		Events      int64 `json:"events"`
		Recruitment struct {
			Total int64 `json:"total"`
		} `json:"recruitment"`
		BrainGames struct {
			Total int64 `json:"total"`
		} `json:"brainGames"`
		RecentContacts []struct {
			Email string `json:"email"`
		} `json:"recentContacts"`
	}
	decode(t, w, &stats)
	assert.Equal(t, int64(1), stats.Admins)
	assert.Equal(t, int64(1), stats.Contacts)
	assert.Equal(t, int64(1), stats.Events)
	assert.Equal(t, int64(1), stats.Recruitment.Total)
	assert.Zero(t, stats.BrainGames.Total)
	require.Len(t, stats.RecentContacts, 1)
}

func TestMetaHandler_FormOptions(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/meta/form-options", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var body FormOptionsResponse
	decode(t, w, &body)
	assert.Equal(t, validation.RollNumberPattern, body.RollNumberPattern)
	assert.Equal(t, validation.InstitutionDomain(), body.InstitutionEmailDomain)
	assert.Len(t, body.Teams, 18)
	assert.Equal(t, 8, body.Semesters.Max)
	assert.Equal(t, "gdgoc", body.Upload.CloudName)
	assert.True(t, body.Upload.Enabled)
}

func TestNewMetaHandler_UploadDisabled(t *testing.T) {
	h := NewMetaHandler(config.CloudinaryConfig{CloudName: "gdgoc"})
	assert.False(t, h.upload.Enabled)
	assert.Equal(t, "cloudinary", h.upload.Provider)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		store    Pinger
		status   int
		database string
	}{
		{name: "healthy", store: pingerFunc(func(context.Context) error { return nil }), status: http.StatusOK, database: "up"},
		{name: "store down", store: pingerFunc(func(context.Context) error { return errors.New("refused") }), status: http.StatusServiceUnavailable, database: "down"},
		{name: "no store", store: nil, status: http.StatusOK, database: "up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", NewHealthHandler(tt.store).Health)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.status, w.Code)

			var body map[string]string
			decode(t, w, &body)
			assert.Equal(t, ServiceName, body["service"])
			assert.Equal(t, tt.database, body["database"])
			assert.Equal(t, "disabled", body["redis"])
		})
	}
}

func TestHealthHandler_OnStore(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
