// cmd/slipcheck-admin/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/slipcheck/platform/internal/config"
	"github.com/slipcheck/platform/internal/repository"
	"github.com/slipcheck/platform/internal/service"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	batchSize int
	dryRun    bool
	timeout   time.Duration
	retention time.Duration
)

func main() {
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slogger := slog.New(logHandler)
	slog.SetDefault(slogger)

	rootCmd := &cobra.Command{
		Use:          "slipcheck-admin",
		Short:        "Operational maintenance tasks for the SlipCheck platform",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().IntVar(&batchSize, "batch-size", 100, "Number of entities to process in a batch")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print what would be done without making changes")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Minute, "Maximum time to run")

	reconcileCmd := &cobra.Command{
		Use:   "reconcile-orphans",
		Short: "Deactivate companies left without any active employee",
		Long: `Company creation writes the company row and its owner binding in one
transaction, so orphaned companies should not occur. This command is the
safety net: it finds active companies with zero active employees and
deactivates them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReconcileService(slogger, func(ctx context.Context, svc *service.ReconcileService) error {
				count, err := svc.ReconcileOrphanedCompanies(ctx)
				if err != nil {
					return err
				}
				slogger.Info("orphan reconciliation completed", "remediated", count)
				return nil
			})
		},
	}

	expireCmd := &cobra.Command{
		Use:   "expire-invitations",
		Short: "Purge invitations that expired past the retention window",
		Long: `Invitation pending-ness is computed from expires_at at read time, so
expired rows are inert. This command deletes unaccepted invitations whose
expiry is older than the retention window, keeping the table lean.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReconcileService(slogger, func(ctx context.Context, svc *service.ReconcileService) error {
				purged, err := svc.PurgeExpiredInvitations(ctx, retention)
				if err != nil {
					return err
				}
				slogger.Info("invitation purge completed", "purged", purged)
				return nil
			})
		},
	}
	expireCmd.Flags().DurationVar(&retention, "retention", 30*24*time.Hour, "Keep expired invitations this long before purging")

	rootCmd.AddCommand(reconcileCmd, expireCmd)

	if err := rootCmd.Execute(); err != nil {
		slogger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func withReconcileService(slogger *slog.Logger, fn func(context.Context, *service.ReconcileService) error) error {
	cfg := config.Load()

	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	companyRepo := repository.NewCompanyRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)

	svc := service.NewReconcileService(companyRepo, invitationRepo, slogger)
	svc.SetBatchSize(batchSize)
	svc.SetDryRun(dryRun)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, svc)
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}
