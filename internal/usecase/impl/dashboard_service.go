package impl

import (
	"context"
	"log/slog"

	"heatmap/internal/domain/repository"
	"heatmap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	userRepo         repository.UserRepository
	locationRepo     repository.LocationRepository
	demographicRepo  repository.DemographicRepository
	savedAddressRepo repository.SavedAddressRepository
	logger           *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	LocationRepo     repository.LocationRepository
	DemographicRepo  repository.DemographicRepository
	SavedAddressRepo repository.SavedAddressRepository
	Logger           *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		userRepo:         params.UserRepo,
		locationRepo:     params.LocationRepo,
		demographicRepo:  params.DemographicRepo,
		savedAddressRepo: params.SavedAddressRepo,
		logger:           params.Logger,
	}
}

// GetStats returns the current table counts.
func (srv *dashboardService) GetStats(ctx context.Context) (*usecase.DashboardStats, error) {
	users, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	locations, err := srv.locationRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count locations")
	}

	demographics, err := srv.demographicRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count demographics")
	}

	savedAddresses, err := srv.savedAddressRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count saved addresses")
	}

	return &usecase.DashboardStats{
		Users:          users,
		Locations:      locations,
		Demographics:   demographics,
		SavedAddresses: savedAddresses,
	}, nil
}
