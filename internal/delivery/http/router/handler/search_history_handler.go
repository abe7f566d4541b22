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

// SearchHistoryHandlerParams holds dependencies for SearchHistoryHandler, injected by Fx.
type SearchHistoryHandlerParams struct {
	fx.In

	SearchHistoryUC usecase.SearchHistoryUsecase
	Logger          *slog.Logger
}

// SearchHistoryHandler holds dependencies for search-log handlers.
type SearchHistoryHandler struct {
	searchHistoryUC usecase.SearchHistoryUsecase
	logger          *slog.Logger
}

// NewSearchHistoryHandler is the constructor for SearchHistoryHandler.
func NewSearchHistoryHandler(params SearchHistoryHandlerParams) *SearchHistoryHandler {
	return &SearchHistoryHandler{
		searchHistoryUC: params.SearchHistoryUC,
		logger:          params.Logger,
	}
}

// RecordSearch handles appending one entry to the caller's search log.
func (h *SearchHistoryHandler) RecordSearch(c echo.Context) error {
	caller := middleware.GetCaller(c)

	var input *usecase.RecordSearchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	search, err := h.searchHistoryUC.RecordSearch(c.Request().Context(), caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSearchHistoryView(search), "Search recorded successfully")
}

// ListRecentSearches handles retrieving the caller's most recent searches.
func (h *SearchHistoryHandler) ListRecentSearches(c echo.Context) error {
	caller := middleware.GetCaller(c)

	searches, err := h.searchHistoryUC.ListRecentSearches(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSearchHistoryViews(searches), "Recent searches retrieved successfully")
}
