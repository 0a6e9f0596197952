// Package delivery holds the inbound adapters of the service.
package delivery

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
)

// Delivery is a long-running inbound server started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}

// StartParams collects every Delivery registered with As.
type StartParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// As registers a Delivery constructor with the group Start serves.
func As(constructor any) fx.Option {
	return fx.Provide(fx.Annotate(constructor, fx.ResultTags(`group:"deliveries"`)))
}

// Start serves every delivery in the background. The first one that fails
// shuts the whole application down so the OnStop hooks still run.
func Start(ctx context.Context, params StartParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}

			params.Logger.Error("Delivery stopped unexpectedly", slog.Any("error", err))
			if err := params.Shutdown(fx.ExitCode(1)); err != nil {
				params.Logger.Error("Shutdown failed", slog.Any("error", err))
			}
		}()
	}
}
