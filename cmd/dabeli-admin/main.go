package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"dabeli/config"
	"dabeli/internal/infra/auth"
	logs "dabeli/internal/infra/log"
	"dabeli/internal/infra/persistence/postgres"
	"dabeli/internal/usecase"
	"dabeli/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported subcommands:
// - migrate:      create or update the schema
// - create-admin: provision a staff account

const commandTimeout = 2 * time.Minute

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := runSubcommand(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(name string, args []string) error {
	switch name {
	case "migrate":
		return handleMigrate(args)
	case "create-admin":
		return handleCreateAdmin(args)
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown command: %s", name)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: dabeli-admin <command> [flags]

Commands:
  migrate                                     Create or update database tables
  create-admin --username <u> --password <p>  Provision a staff account`)
}

func handleMigrate(args []string) error {
	flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	if err := flagSet.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	var db *gorm.DB

	return withApp(fx.Populate(&db), func(ctx context.Context) error {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}

		slog.Info("Schema migrated")

		return nil
	})
}

func handleCreateAdmin(args []string) error {
	var username, password string

	flagSet := pflag.NewFlagSet("create-admin", pflag.ContinueOnError)
	flagSet.StringVarP(&username, "username", "u", "", "staff login name")
	flagSet.StringVarP(&password, "password", "p", "", "staff password")
	if err := flagSet.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	if username == "" || password == "" {
		return errors.New("--username and --password are required")
	}

	var adminUC usecase.AdminUsecase

	return withApp(fx.Populate(&adminUC), func(ctx context.Context) error {
		admin, err := adminUC.CreateAdmin(ctx, username, password)
		if err != nil {
			return err
		}

		slog.Info("Admin created",
			slog.String("admin_id", admin.ID.String()),
			slog.String("username", admin.Username),
		)

		return nil
	})
}

// withApp starts the dependency graph, runs fn and stops the graph again.
func withApp(populate fx.Option, fn func(ctx context.Context) error) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewAdminRepository,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewAdminService,
		),
		populate,
	)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}

	runErr := fn(ctx)

	if err := app.Stop(ctx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop")
	}

	return runErr
}
