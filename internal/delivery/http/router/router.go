// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"heatmap/internal/delivery/http/middleware"
	"heatmap/internal/delivery/http/router/handler"
	"heatmap/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler       *handler.AccountHandler
	LocationHandler      *handler.LocationHandler
	DemographicHandler   *handler.DemographicHandler
	SearchHistoryHandler *handler.SearchHistoryHandler
	SavedAddressHandler  *handler.SavedAddressHandler
	DashboardHandler     *handler.DashboardHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler       *handler.AccountHandler
	locationHandler      *handler.LocationHandler
	demographicHandler   *handler.DemographicHandler
	searchHistoryHandler *handler.SearchHistoryHandler
	savedAddressHandler  *handler.SavedAddressHandler
	dashboardHandler     *handler.DashboardHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:       params.AccountHandler,
		locationHandler:      params.LocationHandler,
		demographicHandler:   params.DemographicHandler,
		searchHistoryHandler: params.SearchHistoryHandler,
		savedAddressHandler:  params.SavedAddressHandler,
		dashboardHandler:     params.DashboardHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Profile routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.accountHandler.GetProfile)
		userGroup.PUT("/profile", r.accountHandler.UpdateProfile)
	}

	// Business locations, owned per user
	locationGroup := e.Group("/locations")
	locationGroup.Use(r.authMiddleware.Authenticate)
	{
		locationGroup.POST("", r.locationHandler.CreateLocation)
		locationGroup.GET("", r.locationHandler.ListLocations)
		locationGroup.GET("/:id", r.locationHandler.GetLocation)
	}

	// Demographic reads are public; the bulk load is admin-only
	demographicGroup := e.Group("/demographics")
	{
		demographicGroup.GET("", r.demographicHandler.ListDemographics)
		demographicGroup.GET("/:zip", r.demographicHandler.GetDemographic)
		demographicGroup.POST("/load", r.demographicHandler.BulkLoad,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	// Append-only search log
	searchGroup := e.Group("/searches")
	searchGroup.Use(r.authMiddleware.Authenticate)
	{
		searchGroup.POST("", r.searchHistoryHandler.RecordSearch)
		searchGroup.GET("", r.searchHistoryHandler.ListRecentSearches)
	}

	// Saved address bookmarks
	savedGroup := e.Group("/saved-addresses")
	savedGroup.Use(r.authMiddleware.Authenticate)
	{
		savedGroup.POST("", r.savedAddressHandler.CreateSavedAddress)
		savedGroup.GET("", r.savedAddressHandler.ListSavedAddresses)
		savedGroup.PUT("/:id", r.savedAddressHandler.UpdateSavedAddress)
		savedGroup.DELETE("/:id", r.savedAddressHandler.DeleteSavedAddress)
	}

	// Public aggregate counts for the dashboard
	e.GET("/stats", r.dashboardHandler.GetStats)
}
