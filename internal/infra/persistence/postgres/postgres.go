package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"dabeli/config"
	"dabeli/internal/domain/lifecycle"
	"dabeli/internal/errors"
	"dabeli/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolSlowWait      = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database handle shared by every repository, pings it on
// start and watches the connection pool until stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres")
	}
	// Multi-step writes go through the TransactionManager, so single
	// statements run without an implicit transaction.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get postgres sql.DB")
	}

	watcher := &poolWatcher{stats: sqlDB.Stats, logger: params.Logger, slowWait: poolSlowWait}
	stopWatching := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "failed to ping postgres")
			}

			go watcher.run(stopWatching, poolCheckInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			close(stopWatching)

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolWatcher reports requests that had to wait for a free connection,
// usually a sign of long transactions during a rush of orders.
type poolWatcher struct {
	stats    func() sql.DBStats
	logger   *slog.Logger
	slowWait time.Duration
	last     sql.DBStats
}

func (w *poolWatcher) run(stop <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.last = w.stats()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			w.check()
		}
	}
}

func (w *poolWatcher) check() {
	cur := w.stats()
	waits := cur.WaitCount - w.last.WaitCount
	waited := cur.WaitDuration - w.last.WaitDuration
	w.last = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= w.slowWait {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(context.Background(), level, "Postgres connection pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}

// Migrate creates or updates every table and index the service relies on.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
