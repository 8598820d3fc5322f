// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"autoconnect/internal/delivery/http/middleware"
	"autoconnect/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddedVehicleHandler *handler.AddedVehicleHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	addedVehicleHandler *handler.AddedVehicleHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addedVehicleHandler: params.AddedVehicleHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate)

	// Static segments are registered before /:id
	addedVehicles := v1.Group("/added-vehicles")
	{
		addedVehicles.GET("", r.addedVehicleHandler.List)
		addedVehicles.POST("", r.addedVehicleHandler.Create)
		addedVehicles.GET("/stats", r.addedVehicleHandler.Statistics)
		addedVehicles.GET("/export", r.addedVehicleHandler.Export)
		addedVehicles.GET("/owner/:nicNumber", r.addedVehicleHandler.ListByOwner)
		addedVehicles.GET("/:id", r.addedVehicleHandler.Get)
		addedVehicles.PATCH("/:id", r.addedVehicleHandler.Update)
		addedVehicles.DELETE("/:id", r.addedVehicleHandler.Delete)
		addedVehicles.PATCH("/:id/complete", r.addedVehicleHandler.Complete)
		addedVehicles.GET("/:id/qr", r.addedVehicleHandler.CheckInQR)
	}
}
