package api

import (
	"net/http"

	authdelivery "portfolio-web/internal/auth/delivery"
	postdelivery "portfolio-web/internal/post/delivery"
	projectdelivery "portfolio-web/internal/project/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := authdelivery.NewAuthHandler(h.authUsecase, h.sessions, h.broadcaster, h.log)
	projectHandler := projectdelivery.NewProjectHandler(h.projectUsecase, h.log)
	postHandler := postdelivery.NewPostHandler(h.postUsecase, h.log)

	api := r.Group("/api")
	api.Use(authdelivery.SessionMiddleware(h.sessions))
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/check", authHandler.Check)
		}

		// Public collections
		api.GET("/projects", projectHandler.ListPublic)
		api.GET("/projects/:id", projectHandler.GetByID)
		api.GET("/posts", postHandler.ListPublic)
		api.GET("/posts/slug/:slug", postHandler.GetBySlug)

		// Dashboard routes (protected)
		dashboard := api.Group("/dashboard")
		dashboard.Use(authdelivery.RequireSession())
		{
			dashboard.GET("/projects", projectHandler.ListDashboard)
			dashboard.POST("/projects", projectHandler.Create)
			dashboard.PATCH("/projects/:id", projectHandler.Update)
			dashboard.DELETE("/projects/:id", projectHandler.Delete)

			dashboard.GET("/blogs", postHandler.ListDashboard)
			dashboard.POST("/blogs", postHandler.Create)
			dashboard.DELETE("/blogs/:id", postHandler.Delete)
		}
	}
}
