package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "heatmap/internal/delivery/context"
	"heatmap/internal/domain/authz"
	"heatmap/internal/domain/entity"
	domainerrors "heatmap/internal/domain/errors"
	"heatmap/internal/domain/repository"
	"heatmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// savedAddressService implements the SavedAddressUsecase interface.
type savedAddressService struct {
	savedAddressRepo repository.SavedAddressRepository
	logger           *slog.Logger
}

// SavedAddressServiceParams holds dependencies for SavedAddressService, injected by Fx.
type SavedAddressServiceParams struct {
	fx.In

	SavedAddressRepo repository.SavedAddressRepository
	Logger           *slog.Logger
}

// NewSavedAddressService is the constructor for savedAddressService.
func NewSavedAddressService(params SavedAddressServiceParams) usecase.SavedAddressUsecase {
	return &savedAddressService{
		savedAddressRepo: params.SavedAddressRepo,
		logger:           params.Logger,
	}
}

func (srv *savedAddressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSavedAddress bookmarks an address for the caller.
func (srv *savedAddressService) CreateSavedAddress(ctx context.Context, caller authz.Caller, input *usecase.CreateSavedAddressInput) (*entity.SavedAddress, error) {
	if !caller.Authenticated {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	if strings.TrimSpace(input.Address) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("address is required")
	}

	address := &entity.SavedAddress{
		UserID:      caller.UserID,
		Name:        input.Name,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		ZipCode:     input.ZipCode,
		AddressType: entity.AddressType(input.AddressType),
		FiltersUsed: input.FiltersUsed,
		Notes:       input.Notes,
	}

	if err := srv.savedAddressRepo.Create(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create saved address")
	}

	srv.log(ctx).Debug("Saved address created", slog.Any("addressID", address.ID), slog.Any("userID", caller.UserID))

	return address, nil
}

// ListSavedAddresses returns every bookmark for admins, or the caller's own rows.
func (srv *savedAddressService) ListSavedAddresses(ctx context.Context, caller authz.Caller) ([]*entity.SavedAddress, error) {
	if !caller.Authenticated {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	if caller.IsAdmin() {
		addresses, err := srv.savedAddressRepo.FindAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find all saved addresses")
		}

		return addresses, nil
	}

	addresses, err := srv.savedAddressRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find saved addresses by user")
	}

	return addresses, nil
}

// UpdateSavedAddress changes a bookmark's name and notes after an ownership check.
func (srv *savedAddressService) UpdateSavedAddress(ctx context.Context, caller authz.Caller, id uuid.UUID, input *usecase.UpdateSavedAddressInput) (*entity.SavedAddress, error) {
	address, err := srv.findWritable(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		address.Name = *input.Name
	}
	if input.Notes != nil {
		address.Notes = *input.Notes
	}

	if err := srv.savedAddressRepo.UpdateNameAndNotes(ctx, id, address.Name, address.Notes); err != nil {
		if errors.Is(err, repository.ErrSavedAddressNotFound) {
			return nil, domainerrors.ErrSavedAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to update saved address")
	}

	return address, nil
}

// DeleteSavedAddress removes a bookmark after an ownership check.
func (srv *savedAddressService) DeleteSavedAddress(ctx context.Context, caller authz.Caller, id uuid.UUID) error {
	if _, err := srv.findWritable(ctx, caller, id); err != nil {
		return err
	}

	if err := srv.savedAddressRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSavedAddressNotFound) {
			return domainerrors.ErrSavedAddressNotFound
		}

		return errors.Wrap(err, "failed to delete saved address")
	}

	srv.log(ctx).Debug("Saved address deleted", slog.Any("addressID", id), slog.Any("userID", caller.UserID))

	return nil
}

// findWritable loads a bookmark and enforces the write policy before any
// mutation touches storage.
func (srv *savedAddressService) findWritable(ctx context.Context, caller authz.Caller, id uuid.UUID) (*entity.SavedAddress, error) {
	if !caller.Authenticated {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	address, err := srv.savedAddressRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSavedAddressNotFound) {
			return nil, domainerrors.ErrSavedAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find saved address by ID")
	}

	if !authz.CanWrite(caller, address.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	return address, nil
}
