package main

import (
	"github.com/spf13/cobra"

	"github.com/deppfellow/dictionary-api/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the PostgreSQL schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, loggerService, err := bootstrap()
		if err != nil {
			return err
		}
		defer loggerService.Shutdown()

		return database.Migrate(cmd.Context(), log, cfg)
	},
}
