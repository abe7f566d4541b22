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

// SavedAddressHandlerParams holds dependencies for SavedAddressHandler, injected by Fx.
type SavedAddressHandlerParams struct {
	fx.In

	SavedAddressUC usecase.SavedAddressUsecase
	Logger         *slog.Logger
}

// SavedAddressHandler holds dependencies for saved-address bookmark handlers.
type SavedAddressHandler struct {
	savedAddressUC usecase.SavedAddressUsecase
	logger         *slog.Logger
}

// NewSavedAddressHandler is the constructor for SavedAddressHandler.
func NewSavedAddressHandler(params SavedAddressHandlerParams) *SavedAddressHandler {
	return &SavedAddressHandler{
		savedAddressUC: params.SavedAddressUC,
		logger:         params.Logger,
	}
}

// CreateSavedAddress handles bookmarking an address for the caller.
func (h *SavedAddressHandler) CreateSavedAddress(c echo.Context) error {
	caller := middleware.GetCaller(c)

	var input *usecase.CreateSavedAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid saved address input")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.savedAddressUC.CreateSavedAddress(c.Request().Context(), caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSavedAddressView(address), "Address saved successfully")
}

// ListSavedAddresses handles listing bookmarks visible to the caller.
func (h *SavedAddressHandler) ListSavedAddresses(c echo.Context) error {
	caller := middleware.GetCaller(c)

	addresses, err := h.savedAddressUC.ListSavedAddresses(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSavedAddressViews(addresses), "Saved addresses retrieved successfully")
}

// UpdateSavedAddress handles renaming or annotating a bookmark.
func (h *SavedAddressHandler) UpdateSavedAddress(c echo.Context) error {
	caller := middleware.GetCaller(c)

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid saved address ID")
	}

	var input *usecase.UpdateSavedAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid saved address input")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.savedAddressUC.UpdateSavedAddress(c.Request().Context(), caller, addressID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSavedAddressView(address), "Saved address updated successfully")
}

// DeleteSavedAddress handles removing a bookmark.
func (h *SavedAddressHandler) DeleteSavedAddress(c echo.Context) error {
	caller := middleware.GetCaller(c)

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid saved address ID")
	}

	if err := h.savedAddressUC.DeleteSavedAddress(c.Request().Context(), caller, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Saved address deleted"}, "Saved address deleted successfully")
}
