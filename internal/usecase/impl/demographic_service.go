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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// demographicService implements the DemographicUsecase interface.
type demographicService struct {
	txManager       repository.TransactionManager
	demographicRepo repository.DemographicRepository
	logger          *slog.Logger
}

// DemographicServiceParams holds dependencies for DemographicService, injected by Fx.
type DemographicServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	DemographicRepo repository.DemographicRepository
	Logger          *slog.Logger
}

// NewDemographicService is the constructor for demographicService.
func NewDemographicService(params DemographicServiceParams) usecase.DemographicUsecase {
	return &demographicService{
		txManager:       params.TxManager,
		demographicRepo: params.DemographicRepo,
		logger:          params.Logger,
	}
}

func (srv *demographicService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDemographics returns every record with its derived income bracket.
func (srv *demographicService) ListDemographics(ctx context.Context) ([]*usecase.DemographicOutput, error) {
	records, err := srv.demographicRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all demographics")
	}

	outputs := make([]*usecase.DemographicOutput, 0, len(records))
	for _, record := range records {
		outputs = append(outputs, toDemographicOutput(record))
	}

	return outputs, nil
}

// GetDemographic returns the record for one ZIP code.
func (srv *demographicService) GetDemographic(ctx context.Context, zipCode string) (*usecase.DemographicOutput, error) {
	record, err := srv.demographicRepo.FindByZip(ctx, zipCode)
	if err != nil {
		if errors.Is(err, repository.ErrDemographicNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("no demographic record for zip code")
		}

		return nil, errors.Wrap(err, "failed to find demographic by zip code")
	}

	return toDemographicOutput(record), nil
}

// BulkLoad upserts records by ZIP code inside one transaction. A failure on
// any row rolls the whole batch back, so the table never holds a partial load.
func (srv *demographicService) BulkLoad(ctx context.Context, caller authz.Caller, records []*usecase.DemographicRecordInput) (*usecase.BulkLoadOutput, error) {
	if !caller.Authenticated {
		return nil, domainerrors.ErrAuthenticationRequired
	}
	if !caller.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("demographic loads require the admin role")
	}

	output := &usecase.BulkLoadOutput{}
	if len(records) == 0 {
		return output, nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		demographicRepo := repoFactory.DemographicRepo()

		for _, record := range records {
			if strings.TrimSpace(record.ZipCode) == "" {
				return domainerrors.ErrValidationFailed.WrapMessage("demographic record missing zip code")
			}

			inserted, err := demographicRepo.Upsert(ctx, &entity.Demographic{
				ZipCode:         record.ZipCode,
				City:            record.City,
				State:           record.State,
				Population:      record.Population,
				MedianIncome:    record.MedianIncome,
				MedianAge:       record.MedianAge,
				MedianHomeValue: record.MedianHomeValue,
				Households:      record.Households,
			})
			if err != nil {
				return errors.Wrapf(err, "failed to upsert demographic for zip %s", record.ZipCode)
			}

			if inserted {
				output.Inserted++
			} else {
				output.Updated++
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Demographic bulk load failed", slog.Int("records", len(records)), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Demographic bulk load completed",
		slog.Int("inserted", output.Inserted),
		slog.Int("updated", output.Updated),
	)

	return output, nil
}

// toDemographicOutput decorates a record with its derived income bracket.
func toDemographicOutput(record *entity.Demographic) *usecase.DemographicOutput {
	return &usecase.DemographicOutput{
		ZipCode:         record.ZipCode,
		City:            record.City,
		State:           record.State,
		Population:      record.Population,
		MedianIncome:    record.MedianIncome,
		MedianAge:       record.MedianAge,
		MedianHomeValue: record.MedianHomeValue,
		Households:      record.Households,
		IncomeRange:     record.IncomeRange(),
	}
}
