package routes

import (
	"rideform/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRideRequestRoutes registers the public API surface.
func SetupRideRequestRoutes(r *gin.Engine, handler *handlers.RideRequestHandler) {
	api := r.Group("/api")
	{
		api.POST("/ride-request", handler.Create)
		api.GET("/health", handler.Health)
		api.GET("/count", handler.Count)
		api.DELETE("/ride-request/:id", handler.Delete)
	}
}
