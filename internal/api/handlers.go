package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipecatalog/backend/internal/service"
)

// Root answers the bare service banner.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Recipe API Running")
}

// HealthCheck reports API and store health.
func HealthCheck(recipes service.IRecipeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := recipes.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"store":  "unreachable",
				"error":  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"store":   "ok",
			"message": "Recipe API is running",
		})
	}
}

// RegisterRoutes registers all API routes. images may be nil when uploads
// are not configured.
func RegisterRoutes(router *gin.Engine, recipes service.IRecipeService, images service.IImageService, logger *zap.Logger) {
	router.GET("/", Root)
	router.GET("/health", HealthCheck(recipes))
	router.GET("/api/health", HealthCheck(recipes))

	apiGroup := router.Group("/api")
	NewRecipeHandler(recipes, logger).RegisterRoutes(apiGroup)

	if images != nil {
		NewImageHandler(images).RegisterRoutes(apiGroup)
	} else {
		logger.Info("S3 bucket not configured, image uploads disabled")
	}
}
