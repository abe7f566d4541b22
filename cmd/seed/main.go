// Command seed populates an empty database with sample accounts, locations
// and regional demographics for local development. It is a no-op when any
// user already exists.
package main

import (
	"context"
	"log/slog"

	"heatmap/config"
	"heatmap/internal/domain/authz"
	"heatmap/internal/domain/entity"
	"heatmap/internal/domain/repository"
	"heatmap/internal/domain/service"
	"heatmap/internal/errors"
	"heatmap/internal/infra/auth"
	"heatmap/internal/infra/geo"
	logs "heatmap/internal/infra/log"
	"heatmap/internal/infra/persistence/postgres"
	"heatmap/internal/usecase"
	"heatmap/internal/usecase/impl"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type seedParams struct {
	fx.In
	fx.Shutdowner

	Cfg           *config.Config
	Logger        *slog.Logger
	UserRepo      repository.UserRepository
	LocationRepo  repository.LocationRepository
	DemographicUC usecase.DemographicUsecase
	Hasher        service.PasswordHasher
	Locator       service.ZipLocator
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			runSeed,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewLocationRepository,
			postgres.NewDemographicRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			geo.NewZipLocator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDemographicService,
		),
	)
}

func runSeed(ctx context.Context, params seedParams) {
	go func() {
		if err := seed(ctx, params); err != nil {
			params.Logger.Error("Seeding failed", slog.Any("error", err))
			_ = params.Shutdown(fx.ExitCode(1))

			return
		}

		_ = params.Shutdown()
	}()
}

func seed(ctx context.Context, params seedParams) error {
	count, err := params.UserRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count users")
	}
	if count > 0 {
		params.Logger.Info("Database already has users, nothing to seed",
			slog.Int64("user_count", count))

		return nil
	}

	if params.Cfg.Seed == nil || params.Cfg.Seed.AdminPassword == "" || params.Cfg.Seed.UserPassword == "" {
		return errors.New("seed passwords are not configured")
	}

	admin, demo, err := seedUsers(ctx, params)
	if err != nil {
		return err
	}

	if err := seedLocations(ctx, params, demo.ID); err != nil {
		return err
	}

	// The bulk load goes through the usecase so the batch lands in one
	// transaction, acting as the admin account just created.
	return seedDemographics(ctx, params, authz.NewCaller(admin.ID, entity.RoleAdmin))
}

// seedUsers creates the admin and demo accounts. The demo user owns the
// sample locations.
func seedUsers(ctx context.Context, params seedParams) (admin, demo *entity.User, err error) {
	admin = &entity.User{
		Username: "admin",
		Email:    "admin@heatmap.local",
		Role:     entity.RoleAdmin,
	}
	adminHash, err := params.Hasher.Hash(params.Cfg.Seed.AdminPassword)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to hash admin password")
	}
	if err := params.UserRepo.Create(ctx, admin, adminHash); err != nil {
		return nil, nil, errors.Wrap(err, "failed to create admin user")
	}

	demo = &entity.User{
		Username: "demo",
		Email:    "demo@heatmap.local",
		Role:     entity.RoleUser,
	}
	demoHash, err := params.Hasher.Hash(params.Cfg.Seed.UserPassword)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to hash demo password")
	}
	if err := params.UserRepo.Create(ctx, demo, demoHash); err != nil {
		return nil, nil, errors.Wrap(err, "failed to create demo user")
	}

	params.Logger.Info("Created seed accounts",
		slog.String("admin", admin.Username),
		slog.String("user", demo.Username))

	return admin, demo, nil
}

func seedLocations(ctx context.Context, params seedParams, ownerID uuid.UUID) error {
	samples := []*entity.Location{
		{
			Name:         "River Market Coffee",
			Address:      "400 Grand Blvd",
			City:         "Kansas City",
			State:        "MO",
			ZipCode:      "64106",
			BusinessType: entity.BusinessTypeCoffee,
		},
		{
			Name:         "Westport Alehouse",
			Address:      "4128 Broadway Blvd",
			City:         "Kansas City",
			State:        "MO",
			ZipCode:      "64111",
			BusinessType: entity.BusinessTypeRestaurant,
			Notes:        "Busy on weekends",
		},
		{
			Name:         "Overland Park Fitness",
			Address:      "9500 Nall Ave",
			City:         "Overland Park",
			State:        "KS",
			ZipCode:      "66207",
			BusinessType: entity.BusinessTypeFitness,
		},
		{
			Name:         "Crossroads Books",
			Address:      "1737 Walnut St",
			City:         "Kansas City",
			State:        "MO",
			ZipCode:      "64105",
			BusinessType: entity.BusinessTypeRetail,
		},
	}

	for _, location := range samples {
		location.UserID = ownerID
		if point, ok := params.Locator.Lookup(location.ZipCode); ok {
			lat, lon := point.Lat(), point.Lon()
			location.Latitude = &lat
			location.Longitude = &lon
		}

		if err := params.LocationRepo.Create(ctx, location); err != nil {
			return errors.Wrapf(err, "failed to create location %q", location.Name)
		}
	}

	params.Logger.Info("Created seed locations", slog.Int("count", len(samples)))

	return nil
}

func seedDemographics(ctx context.Context, params seedParams, admin authz.Caller) error {
	samples := []*usecase.DemographicRecordInput{
		{
			ZipCode:         "64106",
			City:            "Kansas City",
			State:           "MO",
			Population:      int64Ptr(12847),
			MedianIncome:    int64Ptr(52000),
			MedianAge:       float64Ptr(33.2),
			MedianHomeValue: int64Ptr(215000),
			Households:      int64Ptr(6420),
		},
		{
			ZipCode:         "64111",
			City:            "Kansas City",
			State:           "MO",
			Population:      int64Ptr(18230),
			MedianIncome:    int64Ptr(48500),
			MedianAge:       float64Ptr(31.8),
			MedianHomeValue: int64Ptr(198000),
			Households:      int64Ptr(9310),
		},
		{
			ZipCode:         "66207",
			City:            "Overland Park",
			State:           "KS",
			Population:      int64Ptr(21540),
			MedianIncome:    int64Ptr(78000),
			MedianAge:       float64Ptr(41.5),
			MedianHomeValue: int64Ptr(285000),
			Households:      int64Ptr(8960),
		},
		{
			ZipCode:      "64105",
			City:         "Kansas City",
			State:        "MO",
			Population:   int64Ptr(8740),
			MedianIncome: int64Ptr(61200),
			MedianAge:    float64Ptr(29.6),
		},
		{
			ZipCode:      "50025",
			City:         "Atlantic",
			State:        "IA",
			Population:   int64Ptr(8125),
			MedianIncome: int64Ptr(39400),
			MedianAge:    float64Ptr(44.1),
		},
		{
			ZipCode:      "66048",
			City:         "Leavenworth",
			State:        "KS",
			Population:   int64Ptr(24890),
			MedianIncome: int64Ptr(55700),
			MedianAge:    float64Ptr(34.9),
		},
	}

	output, err := params.DemographicUC.BulkLoad(ctx, admin, samples)
	if err != nil {
		return errors.Wrap(err, "failed to load seed demographics")
	}

	params.Logger.Info("Loaded seed demographics",
		slog.Int("inserted", output.Inserted),
		slog.Int("updated", output.Updated))

	return nil
}

func int64Ptr(v int64) *int64 {
	return &v
}

func float64Ptr(v float64) *float64 {
	return &v
}
