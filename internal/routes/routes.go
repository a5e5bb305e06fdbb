package routes

import (
	"net/http"

	"trackify_backend/internal/events"
	"trackify_backend/internal/handlers"
	"trackify_backend/internal/middleware"
	"trackify_backend/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, eventsHandler *events.Handler, uploadDir string) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.Static("/uploads", uploadDir)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.POST("/forgot-password", h.Auth.ForgotPassword)
			auth.POST("/verify-otp", h.Auth.VerifyOTP)
			auth.POST("/reset-password", h.Auth.ResetPassword)

			authed := auth.Group("")
			authed.Use(middleware.AuthMiddleware())
			{
				authed.GET("/me", h.User.Me)

				users := authed.Group("/users")
				users.Use(middleware.AdminMiddleware())
				{
					users.GET("", h.User.List)
					users.POST("", h.User.Create)
					users.GET("/:id", h.User.Get)
					users.PUT("/:id", h.User.Update)
					users.DELETE("/:id", h.User.Delete)
				}
			}
		}

		complaints := api.Group("/complaints")
		complaints.Use(middleware.AuthMiddleware())
		{
			complaints.POST("", h.Complaint.Create)
			complaints.GET("", h.Complaint.List)
			complaints.GET("/stats", middleware.RequireRoles(
				models.UserRoleWorker, models.UserRoleOrganization, models.UserRoleAdmin,
			), h.Complaint.Stats)
			complaints.GET("/:id", h.Complaint.Get)
			complaints.PUT("/:id", h.Complaint.Update)
			complaints.POST("/:id/progress", middleware.RequireRoles(
				models.UserRoleWorker, models.UserRoleOrganization, models.UserRoleAdmin,
			), h.Complaint.UpdateProgress)
		}

		categories := api.Group("/categories")
		categories.Use(middleware.AuthMiddleware())
		{
			categories.GET("", h.Taxonomy.ListCategories)
			categories.POST("", middleware.AdminMiddleware(), h.Taxonomy.CreateCategory)
			categories.DELETE("/:id", middleware.AdminMiddleware(), h.Taxonomy.DeleteCategory)
		}

		roles := api.Group("/roles")
		roles.Use(middleware.AuthMiddleware())
		{
			roles.GET("", h.Taxonomy.ListRoleDefinitions)
			roles.POST("", middleware.AdminMiddleware(), h.Taxonomy.CreateRoleDefinition)
			roles.DELETE("/:id", middleware.AdminMiddleware(), h.Taxonomy.DeleteRoleDefinition)
		}
	}

	router.GET("/ws/events", middleware.AuthMiddleware(), eventsHandler.ServeWS)
}
