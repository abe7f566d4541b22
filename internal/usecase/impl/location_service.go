package impl

import (
	"context"
	"log/slog"

	deliverycontext "heatmap/internal/delivery/context"
	"heatmap/internal/domain/authz"
	"heatmap/internal/domain/entity"
	domainerrors "heatmap/internal/domain/errors"
	"heatmap/internal/domain/repository"
	"heatmap/internal/domain/service"
	"heatmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	zipLocator   service.ZipLocator
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	ZipLocator   service.ZipLocator
	Logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		zipLocator:   params.ZipLocator,
		logger:       params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateLocation records a location owned by the caller.
func (srv *locationService) CreateLocation(ctx context.Context, caller authz.Caller, input *usecase.CreateLocationInput) (*entity.Location, error) {
	if !caller.Authenticated {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	location := &entity.Location{
		UserID:       caller.UserID,
		Name:         input.Name,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		BusinessType: entity.NormalizeBusinessType(input.BusinessType),
		Notes:        input.Notes,
	}

	srv.backfillCoordinates(location)

	if err := srv.locationRepo.Create(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to create location")
	}

	srv.log(ctx).Debug("Location created",
		slog.Any("locationID", location.ID),
		slog.Any("userID", caller.UserID),
		slog.String("zipCode", location.ZipCode),
	)

	return location, nil
}

// GetLocation retrieves one location after an ownership check.
func (srv *locationService) GetLocation(ctx context.Context, caller authz.Caller, id uuid.UUID) (*entity.Location, error) {
	if !caller.Authenticated {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	location, err := srv.locationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	if !authz.CanRead(caller, location.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	return location, nil
}

// ListLocations returns every location for admins, or the caller's own rows.
func (srv *locationService) ListLocations(ctx context.Context, caller authz.Caller) ([]*entity.Location, error) {
	if !caller.Authenticated {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	if caller.IsAdmin() {
		locations, err := srv.locationRepo.FindAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find all locations")
		}

		return locations, nil
	}

	locations, err := srv.locationRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations by user")
	}

	return locations, nil
}

// backfillCoordinates fills the coordinate pair from the ZIP reference table.
// Locations that already carry any coordinate are left untouched, and unknown
// ZIP codes leave the location without coordinates rather than pinning it to
// the fallback point.
func (srv *locationService) backfillCoordinates(location *entity.Location) {
	if location.HasCoordinates() {
		return
	}

	point, ok := srv.zipLocator.Lookup(location.ZipCode)
	if !ok {
		return
	}

	lat, lon := point.Lat(), point.Lon()
	location.Latitude = &lat
	location.Longitude = &lon
}

// validateCoordinates rejects out-of-range values before any write.
func validateCoordinates(latitude, longitude *float64) error {
	if latitude != nil && (*latitude < -90 || *latitude > 90) {
		return domainerrors.ErrValidationFailed.WrapMessage("latitude out of range")
	}
	if longitude != nil && (*longitude < -180 || *longitude > 180) {
		return domainerrors.ErrValidationFailed.WrapMessage("longitude out of range")
	}

	return nil
}
