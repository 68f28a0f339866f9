package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/carewell-health/cms-api/internal/auth"
	"github.com/carewell-health/cms-api/internal/config"
	"github.com/carewell-health/cms-api/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, verifier *auth.TokenVerifier, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(authMiddleware(verifier, log))

	// Handlers
	postHandler := NewPostHandler(services, cfg, log)
	categoryHandler := NewCategoryHandler(services, cfg, log)
	tagHandler := NewTagHandler(services, cfg, log)
	teamHandler := NewTeamHandler(services, cfg, log)
	mediaHandler := NewMediaHandler(services, cfg, log)
	auditHandler := NewAuditHandler(services, cfg, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// API v1
	v1 := router.Group("/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.GET("", postHandler.List)
			posts.POST("", postHandler.Create)
			posts.GET("/:id", postHandler.Get)
			posts.PUT("/:id", postHandler.Update)
			posts.DELETE("/:id", postHandler.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", categoryHandler.Create)
			categories.GET("/:id", categoryHandler.Get)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", tagHandler.List)
			tags.POST("", tagHandler.Create)
			tags.GET("/:id", tagHandler.Get)
			tags.PUT("/:id", tagHandler.Update)
			tags.DELETE("/:id", tagHandler.Delete)
		}

		team := v1.Group("/team")
		{
			team.GET("", teamHandler.List)
			team.POST("", teamHandler.Create)
			team.GET("/:id", teamHandler.Get)
			team.PUT("/:id", teamHandler.Update)
			team.DELETE("/:id", teamHandler.Delete)
		}

		media := v1.Group("/media")
		{
			media.GET("", mediaHandler.List)
			media.POST("", mediaHandler.Create)
			media.DELETE("", mediaHandler.BulkDelete)
		}

		v1.GET("/audit", auditHandler.List)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "cms-api",
	})
}

// metricsHandler returns row counts per entity
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := services.Stats.Counts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"database":  counts,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
