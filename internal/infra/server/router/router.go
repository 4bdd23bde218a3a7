// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/khatiyan/backend/internal/integration/entrypoint/controller"
	"github.com/khatiyan/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	calculationController *controller.CalculationController
	unitController        *controller.UnitController
	maxBodyBytes          int64
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	calculationController *controller.CalculationController,
	unitController *controller.UnitController,
	maxBodyBytes int64,
) *Router {
	return &Router{
		healthController:      healthController,
		calculationController: calculationController,
		unitController:        unitController,
		maxBodyBytes:          maxBodyBytes,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(middleware.RequestID())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	v1.Use(middleware.BodyLimit(r.maxBodyBytes))
	{
		if r.calculationController != nil {
			calculations := v1.Group("/calculations")
			{
				calculations.POST("", r.calculationController.Calculate)
				calculations.POST("/report", r.calculationController.Report)
			}
		}

		if r.unitController != nil {
			units := v1.Group("/units")
			{
				units.POST("/to-til", r.unitController.ToTil)
				units.POST("/from-til", r.unitController.FromTil)
				units.GET("/scale", r.unitController.Scale)
			}
		}
	}
}
