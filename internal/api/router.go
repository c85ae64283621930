package api

import (
	"github.com/gin-gonic/gin"

	"ctrlplay/internal/api/handlers"
	"ctrlplay/internal/api/middleware"
)

// NewRouter assembles the single evaluation route behind a recovery
// and request-tracking middleware stack, in that order.
func NewRouter() *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestTracking())

	router.GET("/health", handlers.Health)
	router.POST("/evaluate", handlers.Evaluate)

	return router
}
