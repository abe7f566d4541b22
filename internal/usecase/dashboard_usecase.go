package usecase

import "context"

// DashboardStats holds the public aggregate counts shown on the dashboard.
type DashboardStats struct {
	Users          int64 `json:"users"`
	Locations      int64 `json:"locations"`
	Demographics   int64 `json:"demographics"`
	SavedAddresses int64 `json:"saved_addresses"`
}

// DashboardUsecase defines the interface for aggregate statistics.
type DashboardUsecase interface {
	// GetStats returns the current table counts.
	GetStats(ctx context.Context) (*DashboardStats, error)
}
