package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nadoran78/mytable/config"
	"github.com/nadoran78/mytable/internal/delivery"
	"github.com/nadoran78/mytable/internal/delivery/api"
	"github.com/nadoran78/mytable/internal/delivery/api/middleware"
	"github.com/nadoran78/mytable/internal/delivery/api/router/handler"
	"github.com/nadoran78/mytable/internal/delivery/scheduler"
	"github.com/nadoran78/mytable/internal/domain/service"
	"github.com/nadoran78/mytable/internal/infra/auth"
	"github.com/nadoran78/mytable/internal/infra/cache"
	logs "github.com/nadoran78/mytable/internal/infra/log"
	"github.com/nadoran78/mytable/internal/infra/notification"
	"github.com/nadoran78/mytable/internal/infra/persistence/postgres"
	"github.com/nadoran78/mytable/internal/infra/pubsub"
	"github.com/nadoran78/mytable/internal/infra/qrcode"
	"github.com/nadoran78/mytable/internal/usecase"
	"github.com/nadoran78/mytable/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		cache.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewStoreRepository,
			postgres.NewReservationRepository,
			postgres.NewReviewRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
			notification.NewEventDispatcher,
			newClock,
		),
	)
}

// newClock reads the wall clock in the reservation time zone.
func newClock(cfg *config.Config) service.Clock {
	return service.SystemClock{Location: cfg.Reservation.Location()}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewStoreService,
			impl.NewReservationService,
			impl.NewReviewService,
			impl.NewDeviceService,
			func(uc usecase.ReservationUsecase) usecase.NoShowSweeper { return uc },
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewStoreHandler,
			handler.NewReservationHandler,
			handler.NewReviewHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewNoShowScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
