package handler

import (
	"log/slog"
	"net/http"

	"orgs/internal/delivery/api/response"
	"orgs/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeoHandlerParams holds dependencies for GeoHandler, injected by Fx.
type GeoHandlerParams struct {
	fx.In

	OrganizationUC usecase.OrganizationUsecase
	Logger         *slog.Logger
}

// GeoHandler serves the /geo routes.
type GeoHandler struct {
	organizationUC usecase.OrganizationUsecase
	logger         *slog.Logger
}

// NewGeoHandler is the constructor for GeoHandler
func NewGeoHandler(params GeoHandlerParams) *GeoHandler {
	return &GeoHandler{
		organizationUC: params.OrganizationUC,
		logger:         params.Logger,
	}
}

// Radius handles GET /geo/radius. r_m is in metres.
func (h *GeoHandler) Radius(c echo.Context) error {
	if err := requireGeoParams(c, radiusParams); err != nil {
		return response.HandleAppError(c, err)
	}

	var req RadiusRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	filter := req.filter()
	res, err := h.organizationUC.GeoRadius(c.Request().Context(), filter.Center, filter.Meters)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGeoSearchResponse(res))
}

// Rectangle handles GET /geo/rectangle. Edges are inclusive.
func (h *GeoHandler) Rectangle(c echo.Context) error {
	if err := requireGeoParams(c, rectangleParams); err != nil {
		return response.HandleAppError(c, err)
	}

	var req RectangleRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	res, err := h.organizationUC.GeoRectangle(c.Request().Context(), req.filter())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGeoSearchResponse(res))
}
