package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the postboard CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "postboard",
		Short: "postboard - posts and comments API with JWT sessions",
		Long: `postboard serves a REST API for users, posts and comments.
Configuration is read from environment variables. Without a subcommand it serves.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
