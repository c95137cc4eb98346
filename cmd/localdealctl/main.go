// Command localdealctl runs one-off maintenance tasks against the LocalDeal database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"localdeal/config"
	logs "localdeal/internal/infra/log"
	"localdeal/internal/infra/persistence/postgres"
	"localdeal/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var timeout time.Duration

var rootCmd = &cobra.Command{
	Use:           "localdealctl",
	Short:         "LocalDeal maintenance commands",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
			logger.Info("Schema migrated")

			return nil
		})
	},
}

var seedCitiesCmd = &cobra.Command{
	Use:   "seed-cities",
	Short: "Upsert the built-in city catalogue",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
			cities := impl.NewCityService(impl.CityServiceParams{
				CityRepo: postgres.NewCityRepository(db),
				Logger:   logger,
			})

			count, err := cities.SeedCities(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d cities\n", count)

			return nil
		})
	},
}

var pruneTokensCmd = &cobra.Command{
	Use:   "prune-tokens",
	Short: "Delete expired refresh tokens",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
			sessions := impl.NewSessionService(impl.SessionServiceParams{
				RefreshTokenRepo: postgres.NewRefreshTokenRepository(db),
				Logger:           logger,
			})

			count, err := sessions.PruneExpiredSessions(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pruned %d refresh tokens\n", count)

			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Deadline for the whole command")
	rootCmd.AddCommand(migrateCmd, seedCitiesCmd, pruneTokensCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withDatabase starts the config, logger and database providers, runs fn and stops them again.
func withDatabase(parent context.Context, fn func(ctx context.Context, db *gorm.DB, logger *slog.Logger) error) error {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	var (
		db     *gorm.DB
		logger *slog.Logger
	)
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build dependencies")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()

		if err := app.Stop(stopCtx); err != nil {
			logger.Error("Failed to close database", slog.Any("error", err))
		}
	}()

	return fn(ctx, db, logger)
}
