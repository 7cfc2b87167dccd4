package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/core/services"
	"github.com/SscSPs/cuzdan_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/cuzdan_backend/pkg/database"
	"github.com/spf13/cobra"
)

func recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Recurring transaction maintenance",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "process",
		Short: "Generate every recurring transaction that is due now, then exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			dbPool, err := database.NewPgxPool(cmd.Context(), cfg.DatabaseURL, true)
			if err != nil {
				return fmt.Errorf("initialize database pool: %w", err)
			}
			defer database.ClosePgxPool(dbPool)

			svc := services.NewRecurringService(pgsql.NewUnitOfWorkFactory(dbPool))
			return processDue(cmd.Context(), svc, logger)
		},
	})
	return cmd
}

// runRecurringWorker processes due items once at start and then on every tick until ctx ends.
func runRecurringWorker(ctx context.Context, svc portssvc.RecurringSvcFacade, interval time.Duration, logger *slog.Logger) {
	logger = logger.With(slog.String("worker", "recurring"))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := processDue(ctx, svc, logger); err != nil && ctx.Err() == nil {
			logger.Error("Recurring run failed", slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			logger.Info("Recurring worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func processDue(ctx context.Context, svc portssvc.RecurringSvcFacade, logger *slog.Logger) error {
	res, err := svc.ProcessDue(ctx, time.Now())
	if err != nil {
		return err
	}
	logger.Info("Recurring transactions processed",
		slog.Int("processed", res.Processed),
		slog.Int("generated", res.Generated),
		slog.Int("failed", res.Failed))
	if res.Failed > 0 {
		logger.Warn("Some recurring transactions failed", slog.Any("failed_ids", res.FailedIDs))
	}
	return nil
}
