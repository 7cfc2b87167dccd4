package main

import (
	"github.com/SscSPs/cuzdan_backend/internal/repositories/database/pgsql"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the embedded database migrations",
	}
	for _, direction := range []pgsql.MigrateDirection{pgsql.MigrateUp, pgsql.MigrateDown} {
		cmd.AddCommand(&cobra.Command{
			Use:   string(direction),
			Short: "Run all " + string(direction) + " migrations",
			RunE: func(_ *cobra.Command, _ []string) error {
				cfg, logger, err := bootstrap()
				if err != nil {
					return err
				}
				return pgsql.RunMigrations(cfg.DatabaseURL, direction, logger)
			},
		})
	}
	return cmd
}
