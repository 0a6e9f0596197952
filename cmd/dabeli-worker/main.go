// Command dabeli-worker receives lifecycle events from Pub/Sub and pushes them to customer devices.
package main

import (
	"context"
	"log/slog"

	"dabeli/config"
	"dabeli/internal/delivery"
	"dabeli/internal/delivery/worker"
	"dabeli/internal/delivery/worker/handler"
	logs "dabeli/internal/infra/log"
	"dabeli/internal/infra/notification"
	"dabeli/internal/infra/persistence/postgres"
	"dabeli/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Module("push",
			fx.Provide(
				postgres.NewDeviceRepository,
				postgres.NewPushLogRepository,
				notification.NewFirebaseService,
				impl.NewNotificationService,
				handler.NewPushHandler,
			),
		),
		delivery.As(worker.NewServer),
		fx.Invoke(delivery.Start),
	).Run()
}
