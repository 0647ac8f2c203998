package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyhall-app/studyhall/internal/database"
	"github.com/studyhall-app/studyhall/internal/leaderboard"
	"github.com/studyhall-app/studyhall/internal/points"
	"github.com/studyhall-app/studyhall/internal/worker"
)

func newBonusCommand() *cobra.Command {
	var periodFlag string
	cmd := &cobra.Command{
		Use:   "bonus",
		Short: "Run a one-off bonus sweep for the most recent closed period",
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := leaderboard.ParsePeriodType(periodFlag)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer db.Close()

			ledgerRepository := points.NewDBLedgerRepository(db)
			ledger := points.NewLedger(points.NewPolicy(), ledgerRepository)
			sweeper := worker.NewBonusSweeper(ledger, ledgerRepository, cfg.Bonus)

			granted, err := sweeper.Sweep(cmd.Context(), period)
			if err != nil {
				return fmt.Errorf("sweep %s bonuses: %w", period, err)
			}
			fmt.Printf("Granted %d %s bonuses\n", granted, period)
			return nil
		},
	}
	cmd.Flags().StringVar(&periodFlag, "period", string(leaderboard.PeriodWeekly), "bonus period (weekly or monthly)")
	return cmd
}
