package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"neuroad-server/controllers"
	"neuroad-server/middleware"
	"neuroad-server/services"
)

func SetupRoutes(r *gin.Engine) {
	sessionService := services.NewSessionService()

	authController := controllers.NewAuthController()
	catalogController := controllers.NewCatalogController()
	scrapeController := controllers.NewScrapeController()
	fileController := controllers.NewFileController()
	projectController := controllers.NewProjectController()
	generationController := controllers.NewGenerationController()

	r.GET("/health", healthCheck)

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(sessionService))
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": "NeuroAd API - AI-Powered Neuromarketing Content Generator",
			})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/session", authController.CreateSession)
			auth.GET("/me", authController.Me)
			auth.POST("/logout", authController.Logout)
		}

		api.GET("/strategies", catalogController.GetStrategies)
		api.GET("/platforms", catalogController.GetPlatforms)
		api.GET("/marketing-tips", catalogController.GetMarketingTips)

		api.POST("/scrape", scrapeController.Scrape)

		api.POST("/upload", fileController.Upload)
		api.GET("/uploads/:filename", fileController.ServeUpload)
		api.GET("/generated/:filename", fileController.ServeGenerated)

		api.POST("/projects", projectController.CreateProject)
		api.GET("/projects", projectController.GetProjects)
		api.GET("/projects/:id", projectController.GetProject)
		api.DELETE("/projects/:id", projectController.DeleteProject)

		api.POST("/generate-content", generationController.GenerateContent)
		api.POST("/generate-video", generationController.GenerateVideo)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
