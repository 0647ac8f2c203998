package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/studyhall-app/studyhall/internal/database"
	"github.com/studyhall-app/studyhall/internal/leaderboard"
	"github.com/studyhall-app/studyhall/internal/points"
)

func newLeaderboardCommand() *cobra.Command {
	var periodFlag string
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the leaderboard for the current period",
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

			aggregator := leaderboard.NewAggregator(points.NewDBLedgerRepository(db))
			entries, err := aggregator.Rank(cmd.Context(), period, time.Now())
			if err != nil {
				return fmt.Errorf("rank leaderboard: %w", err)
			}
			printLeaderboard(period, entries)
			return nil
		},
	}
	cmd.Flags().StringVar(&periodFlag, "period", string(leaderboard.PeriodWeekly), "leaderboard period (weekly or monthly)")
	return cmd
}

func printLeaderboard(period leaderboard.PeriodType, entries []leaderboard.Entry) {
	bold := color.New(color.Bold)
	bold.Printf("%s leaderboard\n", period)

	if len(entries) == 0 {
		fmt.Println("No activity recorded in this period.")
		return
	}
	for _, entry := range entries {
		line := fmt.Sprintf("%3d. student %-8d %6d points", entry.Rank, entry.StudentID, entry.TotalPoints)
		if entry.Rank == 1 {
			color.Green("%s", line)
			continue
		}
		fmt.Println(line)
	}
}
