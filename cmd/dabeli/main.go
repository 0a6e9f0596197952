// Command dabeli serves the ordering and catering API with its websocket channels.
package main

import (
	"context"
	"log/slog"

	"dabeli/config"
	"dabeli/internal/delivery"
	"dabeli/internal/delivery/api"
	"dabeli/internal/delivery/api/middleware"
	"dabeli/internal/delivery/api/router/handler"
	sockets "dabeli/internal/delivery/realtime"
	"dabeli/internal/domain/service"
	"dabeli/internal/infra/auth"
	"dabeli/internal/infra/events"
	"dabeli/internal/infra/imagestore"
	logs "dabeli/internal/infra/log"
	"dabeli/internal/infra/persistence/postgres"
	"dabeli/internal/infra/pubsub"
	"dabeli/internal/infra/qrcode"
	"dabeli/internal/infra/realtime"
	"dabeli/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		delivery.As(api.NewServer),
		fx.Invoke(delivery.Start),
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
			postgres.NewCustomerRepository,
			postgres.NewAddressRepository,
			postgres.NewAdminRepository,
			postgres.NewResetTokenRepository,
			postgres.NewOrderRepository,
			postgres.NewCateringRepository,
			postgres.NewMenuRepository,
			postgres.NewFeedbackRepository,
			postgres.NewReportRepository,
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
			auth.NewResetCodeGenerator,
			qrcode.NewQRCodeService,
			imagestore.New,
			pubsub.NewEventPublisher,
			realtime.NewHub,
			newRealtimeBroadcaster,
			events.NewDispatcher,
		),
	)
}

// newRealtimeBroadcaster exposes the hub to the lifecycle dispatcher.
func newRealtimeBroadcaster(hub *realtime.Hub) service.RealtimeBroadcaster {
	return hub
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCustomerService,
			impl.NewPasswordResetService,
			impl.NewAdminService,
			impl.NewOrderService,
			impl.NewCateringService,
			impl.NewMenuService,
			impl.NewFeedbackService,
			impl.NewReportService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAdminHandler,
			handler.NewCustomerHandler,
			handler.NewOrderHandler,
			handler.NewCateringHandler,
			handler.NewMenuHandler,
			handler.NewFeedbackHandler,
			handler.NewReportHandler,
			handler.NewDeviceHandler,
			handler.NewTestHandler,
			sockets.NewHandler,
		),
	)
}
