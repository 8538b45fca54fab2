package handler

import (
	"log/slog"
	"net/http"

	"orgs/internal/delivery/api/response"
	"orgs/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BuildingHandlerParams holds dependencies for BuildingHandler, injected by Fx.
type BuildingHandlerParams struct {
	fx.In

	OrganizationUC usecase.OrganizationUsecase
	Logger         *slog.Logger
}

// BuildingHandler serves the /buildings routes.
type BuildingHandler struct {
	organizationUC usecase.OrganizationUsecase
	logger         *slog.Logger
}

// NewBuildingHandler is the constructor for BuildingHandler
func NewBuildingHandler(params BuildingHandlerParams) *BuildingHandler {
	return &BuildingHandler{
		organizationUC: params.OrganizationUC,
		logger:         params.Logger,
	}
}

// Get handles GET /buildings/:id.
func (h *BuildingHandler) Get(c echo.Context) error {
	var req IDRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	building, err := h.organizationUC.GetBuilding(c.Request().Context(), req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBuildingResponse(building))
}

// ListOrganizations handles GET /buildings/:id/organizations.
func (h *BuildingHandler) ListOrganizations(c echo.Context) error {
	var req IDRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	orgs, err := h.organizationUC.ListByBuilding(c.Request().Context(), req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrganizationResponses(orgs))
}
