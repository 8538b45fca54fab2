package handler

import (
	"log/slog"
	"net/http"

	"orgs/internal/delivery/api/response"
	"orgs/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	OrganizationUC usecase.OrganizationUsecase
	Logger         *slog.Logger
}

// ActivityHandler serves the /activities routes.
type ActivityHandler struct {
	organizationUC usecase.OrganizationUsecase
	logger         *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{
		organizationUC: params.OrganizationUC,
		logger:         params.Logger,
	}
}

// ListOrganizations handles GET /activities/:id/organizations. Organizations
// tagged with any descendant activity are included.
func (h *ActivityHandler) ListOrganizations(c echo.Context) error {
	var req IDRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	orgs, err := h.organizationUC.ListByActivity(c.Request().Context(), req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrganizationResponses(orgs))
}
