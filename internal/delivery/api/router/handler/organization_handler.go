// Package handler implements the HTTP handlers of the organizations API.
package handler

import (
	"log/slog"
	"net/http"

	"orgs/internal/delivery/api/response"
	"orgs/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrganizationHandlerParams holds dependencies for OrganizationHandler, injected by Fx.
type OrganizationHandlerParams struct {
	fx.In

	OrganizationUC usecase.OrganizationUsecase
	Logger         *slog.Logger
}

// OrganizationHandler serves the /organizations routes.
type OrganizationHandler struct {
	organizationUC usecase.OrganizationUsecase
	logger         *slog.Logger
}

// NewOrganizationHandler is the constructor for OrganizationHandler
func NewOrganizationHandler(params OrganizationHandlerParams) *OrganizationHandler {
	return &OrganizationHandler{
		organizationUC: params.OrganizationUC,
		logger:         params.Logger,
	}
}

// SearchOrganizationsRequest is the query of a composed search. Omitted
// filters do not constrain the result.
type SearchOrganizationsRequest struct {
	Name       string `query:"name" validate:"max=200"`
	BuildingID int64  `query:"building_id"`
	ActivityID int64  `query:"activity_id"`
	RadiusRequest
	RectangleRequest
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// SearchByNameRequest is the query of a name search.
type SearchByNameRequest struct {
	Q string `query:"q" validate:"required,max=200"`
}

// Search handles GET /organizations.
func (h *OrganizationHandler) Search(c echo.Context) error {
	var req SearchOrganizationsRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	geo, err := geoFilterFromQuery(c, req.RadiusRequest, req.RectangleRequest)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	buildingID, err := optionalID(c, "building_id", req.BuildingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	activityID, err := optionalID(c, "activity_id", req.ActivityID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.SearchInput{
		Name:       req.Name,
		BuildingID: buildingID,
		ActivityID: activityID,
		Geo:        geo,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}

	page, err := h.organizationUC.Search(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(page))
}

// SearchByName handles GET /organizations/search.
func (h *OrganizationHandler) SearchByName(c echo.Context) error {
	var req SearchByNameRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	orgs, err := h.organizationUC.SearchByName(c.Request().Context(), req.Q)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrganizationResponses(orgs))
}

// Get handles GET /organizations/:id.
func (h *OrganizationHandler) Get(c echo.Context) error {
	var req IDRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	org, err := h.organizationUC.GetOrganization(c.Request().Context(), req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrganizationResponse(org))
}
