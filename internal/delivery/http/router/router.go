// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"solarad/internal/delivery/http/middleware"
	"solarad/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	LocationHandler *handler.LocationHandler
	InterestHandler *handler.InterestHandler
	AdminHandler    *handler.AdminHandler
	RegionHandler   *handler.RegionHandler

	SessionMiddleware *middleware.SessionMiddleware
	MetricsMiddleware *middleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	locationHandler *handler.LocationHandler
	interestHandler *handler.InterestHandler
	adminHandler    *handler.AdminHandler
	regionHandler   *handler.RegionHandler

	sessionMiddleware *middleware.SessionMiddleware
	metricsMiddleware *middleware.MetricsMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		locationHandler:   params.LocationHandler,
		interestHandler:   params.InterestHandler,
		adminHandler:      params.AdminHandler,
		regionHandler:     params.RegionHandler,
		sessionMiddleware: params.SessionMiddleware,
		metricsMiddleware: params.MetricsMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", r.metricsMiddleware.Handler())

	api := e.Group("/api")

	// Public endpoints
	api.GET("/location-types", r.locationHandler.ListTypes)

	thailandGroup := api.Group("/thailand")
	{
		thailandGroup.GET("/provinces", r.regionHandler.Provinces)
		thailandGroup.GET("/amphures/:provinceId", r.regionHandler.Amphures)
		thailandGroup.GET("/tambons/:amphureId", r.regionHandler.Tambons)
		thailandGroup.GET("/all", r.regionHandler.All)
	}

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.sessionMiddleware.Authenticate)
	}

	// Routes that require a signed-in session
	protected := api.Group("", r.sessionMiddleware.Authenticate)
	{
		protected.GET("/locations", r.locationHandler.Search)
		protected.POST("/locations", r.locationHandler.Create)
		protected.POST("/interests", r.interestHandler.Record)
		protected.GET("/my-interests", r.interestHandler.ListMine)
		protected.GET("/thailand/search", r.regionHandler.SearchAddress)
	}

	// Admin routes require the admin role on top of a session
	adminGroup := api.Group("/admin", r.sessionMiddleware.Authenticate, r.sessionMiddleware.RequireAdmin)
	{
		adminGroup.GET("/interests", r.adminHandler.ListInterests)
		adminGroup.PUT("/interests/:id/approve", r.adminHandler.ApproveInterest)
		adminGroup.GET("/stats", r.adminHandler.Stats)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users", r.adminHandler.CreateUser)
		adminGroup.PUT("/users/:id", r.adminHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
	}
}
