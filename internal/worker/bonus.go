package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/studyhall-app/studyhall/internal/config"
	"github.com/studyhall-app/studyhall/internal/leaderboard"
	"github.com/studyhall-app/studyhall/internal/points"
)

// EventCounter counts ledger entries per student over a time window.
type EventCounter interface {
	CountEventsBetween(ctx context.Context, from, to time.Time) ([]points.StudentEventCount, error)
}

// BonusSweeper awards weekly and monthly bonus points to students who were
// active enough in the just-closed period. Dedupe keys carry the period
// start, so overlapping sweeps and re-runs award each period at most once.
type BonusSweeper struct {
	ledger  Awarder
	counter EventCounter
	cfg     config.BonusConfig
	now     func() time.Time
}

// NewBonusSweeper creates a new BonusSweeper.
func NewBonusSweeper(ledger Awarder, counter EventCounter, cfg config.BonusConfig) *BonusSweeper {
	return &BonusSweeper{
		ledger:  ledger,
		counter: counter,
		cfg:     cfg,
		now:     time.Now,
	}
}

// NewBonusSweeperWithClock creates a BonusSweeper with an injected clock for tests.
func NewBonusSweeperWithClock(ledger Awarder, counter EventCounter, cfg config.BonusConfig, now func() time.Time) *BonusSweeper {
	return &BonusSweeper{
		ledger:  ledger,
		counter: counter,
		cfg:     cfg,
		now:     now,
	}
}

// Sweep awards the bonus for the period that closed most recently before
// now. It returns the number of students granted a bonus.
func (s *BonusSweeper) Sweep(ctx context.Context, period leaderboard.PeriodType) (int, error) {
	activityType, minEvents, err := s.bonusFor(period)
	if err != nil {
		return 0, err
	}

	// The current period's start is the closed period's exclusive end.
	// Periods are reckoned in UTC, same as the cron schedule, so the
	// host timezone cannot shift which period just closed.
	end := leaderboard.PeriodStart(period, s.now().UTC())
	var start time.Time
	if period == leaderboard.PeriodMonthly {
		start = end.AddDate(0, -1, 0)
	} else {
		start = end.AddDate(0, 0, -7)
	}

	counts, err := s.counter.CountEventsBetween(ctx, start, end)
	if err != nil {
		return 0, fmt.Errorf("count events for %s bonus: %w", period, err)
	}

	periodID := periodEntityID(start)
	granted := 0
	for _, count := range counts {
		if count.Events < minEvents {
			continue
		}

		results, err := s.ledger.Award(ctx, count.StudentID, activityType, &periodID, points.Outcome{})
		if err != nil {
			slog.Error("bonus award failed",
				"studentID", count.StudentID,
				"activityType", activityType,
				"periodStart", start,
				"error", err)
			continue
		}
		for _, result := range results {
			if result.Awarded {
				granted++
			}
		}
	}
	return granted, nil
}

func (s *BonusSweeper) bonusFor(period leaderboard.PeriodType) (points.ActivityType, int, error) {
	switch period {
	case leaderboard.PeriodWeekly:
		return points.ActivityWeeklyBonus, s.cfg.WeeklyMinEvents, nil
	case leaderboard.PeriodMonthly:
		return points.ActivityMonthlyBonus, s.cfg.MonthlyMinEvents, nil
	}
	return "", 0, fmt.Errorf("%q: %w", period, leaderboard.ErrUnknownPeriod)
}

// periodEntityID encodes a period start date as the related entity id of a
// bonus grant, e.g. 2025-03-10 becomes 20250310.
func periodEntityID(start time.Time) int64 {
	return int64(start.Year())*10000 + int64(start.Month())*100 + int64(start.Day())
}

// Schedule registers the bonus sweeps on a gocron scheduler: weekly shortly
// after midnight on Mondays, monthly on the first.
func (s *BonusSweeper) Schedule(scheduler *gocron.Scheduler) error {
	if _, err := scheduler.Cron("15 0 * * 1").Do(func() {
		s.runScheduled(leaderboard.PeriodWeekly)
	}); err != nil {
		return fmt.Errorf("schedule weekly bonus sweep: %w", err)
	}
	if _, err := scheduler.Cron("30 0 1 * *").Do(func() {
		s.runScheduled(leaderboard.PeriodMonthly)
	}); err != nil {
		return fmt.Errorf("schedule monthly bonus sweep: %w", err)
	}
	return nil
}

func (s *BonusSweeper) runScheduled(period leaderboard.PeriodType) {
	granted, err := s.Sweep(context.Background(), period)
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("bonus sweep failed", "period", period, "error", err)
		return
	}
	slog.Info("bonus sweep finished", "period", period, "granted", granted)
}
