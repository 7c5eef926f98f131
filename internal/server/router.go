// Package server exposes the content orchestrator and catalogue over
// HTTP for the web front-end.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kidwise/kidwise/internal/logger"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(h *Handler, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: false,
	}))

	router.GET("/healthcheck", healthCheck)

	api := router.Group("/api")
	{
		api.GET("/concepts", h.ListConcepts)
		api.GET("/concepts/:id", h.GetConcept)
		api.GET("/concepts/:id/related", h.RelatedConcepts)
		api.POST("/explain", h.Explain)
	}

	return router
}
