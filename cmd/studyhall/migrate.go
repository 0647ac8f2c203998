package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyhall-app/studyhall/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer db.Close()

			if err := database.ApplyMigrations(cmd.Context(), db); err != nil {
				return fmt.Errorf("database.ApplyMigrations() > %w", err)
			}
			fmt.Println("Migrations applied")
			return nil
		},
	}
}
