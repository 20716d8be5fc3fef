package api

import (
	"net/http"
	"path/filepath"

	"github.com/kevink520/exercisetracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires middleware, static assets and the tracker endpoints
// onto the router. The paths match the classic exercise tracker API.
// There are deliberately no deletion endpoints.
func SetupRoutes(router *gin.Engine, trackerService service.TrackerService, publicDir, viewsDir string) {
	trackerHandler := NewTrackerHandler(trackerService)

	router.Use(CORSMiddleware())
	router.Use(RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if publicDir != "" {
		router.Static("/public", publicDir)
	}
	if viewsDir != "" {
		indexPage := filepath.Join(viewsDir, "index.html")
		router.GET("/", func(c *gin.Context) {
			c.File(indexPage)
		})
	}

	exerciseGroup := router.Group("/api/exercise")
	{
		exerciseGroup.POST("/new-user", trackerHandler.CreateUser)
		exerciseGroup.POST("/add", trackerHandler.AddEntry)
		exerciseGroup.GET("/log", trackerHandler.GetLog)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}
