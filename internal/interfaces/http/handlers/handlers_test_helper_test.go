package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gdgoc.backend/internal/config"
	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/internal/domain/validation"
	"gdgoc.backend/internal/infrastructure/datastore"
	"gdgoc.backend/internal/infrastructure/mailer"
	"gdgoc.backend/internal/infrastructure/models"
	"gdgoc.backend/internal/interfaces/http/middleware"
	"gdgoc.backend/internal/usecases"
	"gdgoc.backend/pkg/jwt"
)

type recordingMailer struct {
	mu       sync.Mutex
	messages []*mailer.Message
}

// Notify records the message the dispatcher would queue
func (m *recordingMailer) Notify(n *entities.Notification) bool {
	msg, err := mailer.NewMessage(n)
	if err != nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return true
}

func (m *recordingMailer) Messages() []*mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*mailer.Message(nil), m.messages...)
}

type testEnv struct {
	router *gin.Engine
	store  *datastore.Store
	mailer *recordingMailer
	admin  *entities.Admin
	token  string
}

// newTestEnv wires real usecases on an in-memory SQLite store and mounts
// the handlers the same way the server does.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Register()

	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	store := datastore.NewGormStore(db)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	rec := &recordingMailer{}
	notifier := usecases.NewNotifier(rec)
	jwtService := jwt.NewJWTService("test-secret", time.Hour)

	adminUC := usecases.NewAdminUsecase(store.Admins, jwtService)
	admin, err := adminUC.Register(context.Background(), &entities.CreateAdminInput{
		Name: "Root", Username: "root", Password: "password123",
	})
	require.NoError(t, err)
	auth, err := adminUC.Login(context.Background(), &entities.LoginInput{Username: "root", Password: "password123"})
	require.NoError(t, err)

	adminH := NewAdminHandler(adminUC)
	contactH := NewContactHandler(usecases.NewContactUsecase(store.Contacts, notifier))
	eventH := NewEventHandler(usecases.NewEventUsecase(store.Events))
	recruitmentH := NewRecruitmentHandler(usecases.NewRecruitmentUsecase(store.Recruitment, notifier))
	brainGamesH := NewBrainGamesHandler(usecases.NewBrainGamesUsecase(store.BrainGames, notifier))
	newEventH := NewNewEventHandler(usecases.NewNewEventUsecase(store.NewEvent, notifier))
	dashboardH := NewDashboardHandler(usecases.NewDashboardUsecase(usecases.DashboardRepositories{
		Admins:      store.Admins,
		Contacts:    store.Contacts,
		Events:      store.Events,
		Recruitment: store.Recruitment,
		BrainGames:  store.BrainGames,
		NewEvent:    store.NewEvent,
	}))
	metaH := NewMetaHandler(config.CloudinaryConfig{CloudName: "gdgoc", UploadPreset: "unsigned"})

	r := gin.New()
	requireAdmin := middleware.AuthMiddleware(adminUC)
	api := r.Group("/api")

	a := api.Group("/admin")
	a.POST("/login", adminH.Login)
	a.POST("/register", requireAdmin, adminH.Register)
	a.GET("", requireAdmin, adminH.List)
	a.GET("/by-token", requireAdmin, adminH.GetMe)
	a.PUT("/by-token", requireAdmin, adminH.UpdateMe)
	a.GET("/:id", requireAdmin, adminH.GetByID)
	a.PUT("/:id", requireAdmin, adminH.Update)
	a.PUT("/:id/change-password", requireAdmin, adminH.ChangePassword)
	a.DELETE("/:id", requireAdmin, adminH.Delete)

	api.POST("/contact", contactH.Create)
	api.GET("/contact", requireAdmin, contactH.List)
	api.GET("/contact/:id", requireAdmin, contactH.GetByID)
	api.DELETE("/contact/:id", requireAdmin, contactH.Delete)

	api.GET("/event", eventH.List)
	api.GET("/event/latest", eventH.Latest)
	api.GET("/event/search", eventH.Search)
	api.GET("/event/:id", eventH.GetByID)
	api.POST("/event", requireAdmin, eventH.Create)
	api.PUT("/event/:id", requireAdmin, eventH.Update)
	api.DELETE("/event/:id", requireAdmin, eventH.Delete)

	api.POST("/recruitment", recruitmentH.Create)
	api.GET("/recruitment", requireAdmin, recruitmentH.List)
	api.GET("/recruitment/all", requireAdmin, recruitmentH.All)
	api.GET("/recruitment/export.csv", requireAdmin, recruitmentH.ExportCSV)
	api.GET("/recruitment/stats", requireAdmin, recruitmentH.Stats)
	api.GET("/recruitment/emails", requireAdmin, recruitmentH.Emails)
	api.GET("/recruitment/:id", requireAdmin, recruitmentH.GetByID)
	api.PATCH("/recruitment/bulk-update", requireAdmin, recruitmentH.BulkUpdateStatus)
	api.PATCH("/recruitment/:id/status", requireAdmin, recruitmentH.UpdateStatus)
	api.DELETE("/recruitment/:id", requireAdmin, recruitmentH.Delete)

	api.POST("/brain-games", brainGamesH.Create)
	api.GET("/brain-games", requireAdmin, brainGamesH.List)
	api.GET("/brain-games/all", requireAdmin, brainGamesH.All)
	api.GET("/brain-games/stats", requireAdmin, brainGamesH.Stats)
	api.GET("/brain-games/:id", requireAdmin, brainGamesH.GetByID)
	api.PATCH("/brain-games/:id/status", requireAdmin, brainGamesH.UpdateStatus)
	api.DELETE("/brain-games/:id", requireAdmin, brainGamesH.Delete)

	api.POST("/new-event", newEventH.Create)
	api.GET("/new-event", requireAdmin, newEventH.List)
	api.GET("/new-event/stats", requireAdmin, newEventH.Stats)
	api.GET("/new-event/:id", requireAdmin, newEventH.GetByID)
	api.PATCH("/new-event/:id/accept", requireAdmin, newEventH.Accept)
	api.PATCH("/new-event/:id/reject", requireAdmin, newEventH.Reject)
	api.PATCH("/new-event/:id/status", requireAdmin, newEventH.UpdateStatus)
	api.DELETE("/new-event/:id", requireAdmin, newEventH.Delete)

	api.GET("/dashboard", requireAdmin, dashboardH.Stats)
	api.GET("/meta/form-options", metaH.FormOptions)
	r.GET("/health", NewHealthHandler(store).Health)

	return &testEnv{router: r, store: store, mailer: rec, admin: admin, token: auth.Token}
}

// do sends a JSON request; authed requests carry the seeded admin's token
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set(middleware.AuthorizationHeader, middleware.BearerPrefix+e.token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

type pageBody struct {
	Pagination struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int   `json:"totalPages"`
	} `json:"pagination"`
}
