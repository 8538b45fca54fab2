// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"orgs/config"
	"orgs/internal/delivery/api/middleware"
	"orgs/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrganizationHandler *handler.OrganizationHandler
	BuildingHandler     *handler.BuildingHandler
	ActivityHandler     *handler.ActivityHandler
	GeoHandler          *handler.GeoHandler
	APIKeyMiddleware    *middleware.APIKeyMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	organizationHandler *handler.OrganizationHandler
	buildingHandler     *handler.BuildingHandler
	activityHandler     *handler.ActivityHandler
	geoHandler          *handler.GeoHandler
	apiKeyMiddleware    *middleware.APIKeyMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		organizationHandler: params.OrganizationHandler,
		buildingHandler:     params.BuildingHandler,
		activityHandler:     params.ActivityHandler,
		geoHandler:          params.GeoHandler,
		apiKeyMiddleware:    params.APIKeyMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Unauthenticated probes
	e.GET("/health", handler.HealthCheck)
	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	// Everything else requires the API key
	api := e.Group("")
	api.Use(r.apiKeyMiddleware.Authenticate)

	organizationsGroup := api.Group("/organizations")
	{
		organizationsGroup.GET("", r.organizationHandler.Search)
		organizationsGroup.GET("/search", r.organizationHandler.SearchByName)
		organizationsGroup.GET("/:id", r.organizationHandler.Get)
	}

	buildingsGroup := api.Group("/buildings")
	{
		buildingsGroup.GET("/:id", r.buildingHandler.Get)
		buildingsGroup.GET("/:id/organizations", r.buildingHandler.ListOrganizations)
	}

	activitiesGroup := api.Group("/activities")
	{
		activitiesGroup.GET("/:id/organizations", r.activityHandler.ListOrganizations)
	}

	geoGroup := api.Group("/geo")
	{
		geoGroup.GET("/radius", r.geoHandler.Radius)
		geoGroup.GET("/rectangle", r.geoHandler.Rectangle)
	}
}
