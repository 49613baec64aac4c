package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/postboard-server/database"
	"github.com/dtroode/postboard-server/internal/config"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long:  `Apply all pending migrations to the database given by DATABASE_DSN or --dsn.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dsn == "" {
				cfg, err := config.NewDatabaseConfig()
				if err != nil {
					return err
				}
				dsn = cfg.DSN
			}

			cmd.Println("Running migrations...")
			if err := database.Migrate(cmd.Context(), dsn); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}

			cmd.Println("Migrations completed successfully")
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "database connection string (overrides DATABASE_DSN)")

	return cmd
}
