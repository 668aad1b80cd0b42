// internal/app/router.go
package app

import (
	vehicleHandler "fleet-rental-service/internal/handlers/vehicle"
	"fleet-rental-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	VehicleHandler *vehicleHandler.VehicleHandler
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, limiter *middleware.RateLimiter, h *Handlers) {
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.RequestLogger(logger))
	if limiter != nil {
		r.Use(limiter.Middleware())
	}

	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Vehicles ====================
	vehicles := api.Group("/vehicles")
	{
		vehicles.POST("", h.VehicleHandler.CreateVehicle)
		vehicles.GET("", h.VehicleHandler.ListVehicles)
		vehicles.PUT("/rent", h.VehicleHandler.RentVehicle)
		vehicles.PUT("/return", h.VehicleHandler.ReturnVehicle)
	}
}
