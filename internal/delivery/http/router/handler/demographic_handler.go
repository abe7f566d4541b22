package handler

import (
	"log/slog"
	"net/http"

	"heatmap/internal/delivery/http/middleware"
	"heatmap/internal/delivery/http/response"
	"heatmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DemographicHandlerParams holds dependencies for DemographicHandler, injected by Fx.
type DemographicHandlerParams struct {
	fx.In

	DemographicUC usecase.DemographicUsecase
	Logger        *slog.Logger
}

// DemographicHandler holds dependencies for ZIP-code statistics handlers.
type DemographicHandler struct {
	demographicUC usecase.DemographicUsecase
	logger        *slog.Logger
}

// NewDemographicHandler is the constructor for DemographicHandler.
func NewDemographicHandler(params DemographicHandlerParams) *DemographicHandler {
	return &DemographicHandler{
		demographicUC: params.DemographicUC,
		logger:        params.Logger,
	}
}

// BulkLoadRequest represents the request body for a bulk demographic load.
type BulkLoadRequest struct {
	Records []*usecase.DemographicRecordInput `json:"records" validate:"required,min=1,dive,required"`
}

// ListDemographics handles the public listing of every demographic record.
func (h *DemographicHandler) ListDemographics(c echo.Context) error {
	records, err := h.demographicUC.ListDemographics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Demographics retrieved successfully")
}

// GetDemographic handles the public lookup of one ZIP code's record.
func (h *DemographicHandler) GetDemographic(c echo.Context) error {
	zipCode := c.Param("zip")

	record, err := h.demographicUC.GetDemographic(c.Request().Context(), zipCode)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Demographic retrieved successfully")
}

// BulkLoad handles the admin-only batch upsert of demographic records.
func (h *DemographicHandler) BulkLoad(c echo.Context) error {
	caller := middleware.GetCaller(c)

	var req BulkLoadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid demographic load input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.demographicUC.BulkLoad(c.Request().Context(), caller, req.Records)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Demographics loaded successfully")
}
