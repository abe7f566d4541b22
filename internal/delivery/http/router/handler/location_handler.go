package handler

import (
	"log/slog"
	"net/http"

	"heatmap/internal/delivery/http/middleware"
	"heatmap/internal/delivery/http/response"
	"heatmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for business-location handlers.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler.
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// CreateLocation handles recording a new business location for the caller.
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	caller := middleware.GetCaller(c)

	var input *usecase.CreateLocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	location, err := h.locationUC.CreateLocation(c.Request().Context(), caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toLocationView(location), "Location created successfully")
}

// GetLocation handles retrieving a single location by ID.
func (h *LocationHandler) GetLocation(c echo.Context) error {
	caller := middleware.GetCaller(c)

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), caller, locationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLocationView(location), "Location retrieved successfully")
}

// ListLocations handles listing locations visible to the caller.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	caller := middleware.GetCaller(c)

	locations, err := h.locationUC.ListLocations(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLocationViews(locations), "Locations retrieved successfully")
}
