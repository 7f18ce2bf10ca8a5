package main

import (
	"context"
	"log/slog"
	"os"

	"solarad/config"
	"solarad/internal/delivery"
	"solarad/internal/delivery/http"
	"solarad/internal/delivery/http/middleware"
	"solarad/internal/delivery/http/router/handler"
	"solarad/internal/infra/auth"
	logs "solarad/internal/infra/log"
	"solarad/internal/infra/persistence/postgres"
	"solarad/internal/infra/places"
	"solarad/internal/infra/region"
	"solarad/internal/infra/session"
	"solarad/internal/usecase"
	"solarad/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bootstrapStorage,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		session.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewLocationRepository,
			postgres.NewInterestRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			session.NewRedisStore,
			region.NewDirectory,
			region.NewAddressSearcher,
			places.NewOverpassClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewLocationService,
			impl.NewInterestService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewSessionMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewLocationHandler,
			handler.NewInterestHandler,
			handler.NewAdminHandler,
			handler.NewRegionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrapStorage migrates the schema and provisions the default accounts
// before any delivery starts serving.
func bootstrapStorage(ctx context.Context, db *gorm.DB, accounts usecase.AccountUsecase, logger *slog.Logger) error {
	if err := postgres.Migrate(db); err != nil {
		return err
	}

	if err := accounts.SeedDefaults(ctx); err != nil {
		return err
	}

	logger.Info("Storage bootstrap complete")

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
