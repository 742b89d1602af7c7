package main

import (
	"github.com/gin-gonic/gin"

	"gdgoc.backend/internal/interfaces/http/handlers"
	"gdgoc.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	adminHandler       *handlers.AdminHandler
	contactHandler     *handlers.ContactHandler
	eventHandler       *handlers.EventHandler
	recruitmentHandler *handlers.RecruitmentHandler
	brainGamesHandler  *handlers.BrainGamesHandler
	newEventHandler    *handlers.NewEventRegistrationHandler
	dashboardHandler   *handlers.DashboardHandler
	metaHandler        *handlers.MetaHandler
	authMiddleware     gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine, allowedOrigins []string) {
	r.Use(middleware.CORSMiddleware(allowedOrigins))
}

func registerHealthRoute(r *gin.Engine, h *handlers.HealthHandler) {
	r.GET("/health", h.Health)
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", middleware.MetricsHandler())
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	idempotent := middleware.IdempotencyMiddleware()
	{
		// Admin routes; only login is public
		admin := api.Group("/admin")
		{
			admin.POST("/login", d.adminHandler.Login)

			protected := admin.Group("")
			protected.Use(d.authMiddleware)
			protected.POST("/register", d.adminHandler.Register)
			protected.GET("", d.adminHandler.List)
			protected.GET("/by-token", d.adminHandler.GetMe)
			protected.PUT("/by-token", d.adminHandler.UpdateMe)
			protected.GET("/:id", d.adminHandler.GetByID)
			protected.PUT("/:id", d.adminHandler.Update)
			protected.PUT("/:id/change-password", d.adminHandler.ChangePassword)
			protected.DELETE("/:id", d.adminHandler.Delete)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", idempotent, d.contactHandler.Create)
			contact.GET("", d.authMiddleware, d.contactHandler.List)
			contact.GET("/:id", d.authMiddleware, d.contactHandler.GetByID)
			contact.DELETE("/:id", d.authMiddleware, d.contactHandler.Delete)
		}

		event := api.Group("/event")
		{
			event.GET("", d.eventHandler.List)
			event.GET("/latest", d.eventHandler.Latest)
			event.GET("/search", d.eventHandler.Search)
			event.GET("/:id", d.eventHandler.GetByID)
			event.POST("", d.authMiddleware, d.eventHandler.Create)
			event.PUT("/:id", d.authMiddleware, d.eventHandler.Update)
			event.DELETE("/:id", d.authMiddleware, d.eventHandler.Delete)
		}

		recruitment := api.Group("/recruitment")
		{
			recruitment.POST("", idempotent, d.recruitmentHandler.Create)

			protected := recruitment.Group("")
			protected.Use(d.authMiddleware)
			protected.GET("", d.recruitmentHandler.List)
			protected.GET("/all", d.recruitmentHandler.All)
			protected.GET("/export.csv", d.recruitmentHandler.ExportCSV)
			protected.GET("/stats", d.recruitmentHandler.Stats)
			protected.GET("/emails", d.recruitmentHandler.Emails)
			protected.GET("/:id", d.recruitmentHandler.GetByID)
			protected.PATCH("/bulk-update", d.recruitmentHandler.BulkUpdateStatus)
			protected.PATCH("/:id/status", d.recruitmentHandler.UpdateStatus)
			protected.DELETE("/:id", d.recruitmentHandler.Delete)
		}

		brainGames := api.Group("/brain-games")
		{
			brainGames.POST("", idempotent, d.brainGamesHandler.Create)

			protected := brainGames.Group("")
			protected.Use(d.authMiddleware)
			protected.GET("", d.brainGamesHandler.List)
			protected.GET("/all", d.brainGamesHandler.All)
			protected.GET("/stats", d.brainGamesHandler.Stats)
			protected.GET("/:id", d.brainGamesHandler.GetByID)
			protected.PATCH("/:id/status", d.brainGamesHandler.UpdateStatus)
			protected.DELETE("/:id", d.brainGamesHandler.Delete)
		}

		newEvent := api.Group("/new-event")
		{
			newEvent.POST("", idempotent, d.newEventHandler.Create)

			protected := newEvent.Group("")
			protected.Use(d.authMiddleware)
			protected.GET("", d.newEventHandler.List)
			protected.GET("/stats", d.newEventHandler.Stats)
			protected.GET("/:id", d.newEventHandler.GetByID)
			protected.PATCH("/:id/accept", d.newEventHandler.Accept)
			protected.PATCH("/:id/reject", d.newEventHandler.Reject)
			protected.PATCH("/:id/status", d.newEventHandler.UpdateStatus)
			protected.DELETE("/:id", d.newEventHandler.Delete)
		}

		api.GET("/dashboard", d.authMiddleware, d.dashboardHandler.Stats)
		api.GET("/meta/form-options", d.metaHandler.FormOptions)
	}
}
