// Package leaderboard aggregates ledger entries into ranked, time-windowed
// leaderboards.
package leaderboard

import (
	"errors"
	"fmt"
	"time"
)

// PeriodType selects the aggregation window of a leaderboard.
type PeriodType string

const (
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
)

// ErrUnknownPeriod is returned for period types outside the known set.
var ErrUnknownPeriod = errors.New("unknown period type")

// ParsePeriodType converts a wire string into a PeriodType.
func ParsePeriodType(s string) (PeriodType, error) {
	switch PeriodType(s) {
	case PeriodWeekly:
		return PeriodWeekly, nil
	case PeriodMonthly:
		return PeriodMonthly, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownPeriod)
}

// PeriodStart returns the start of the period containing asOf: the most
// recent Monday 00:00 for weekly, the first of the month for monthly.
// Boundaries are taken in asOf's location.
func PeriodStart(period PeriodType, asOf time.Time) time.Time {
	switch period {
	case PeriodMonthly:
		return time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	default:
		midnight := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
		sinceMonday := (int(asOf.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -sinceMonday)
	}
}

// PeriodEnd returns the exclusive end of the period beginning at start.
func PeriodEnd(period PeriodType, start time.Time) time.Time {
	if period == PeriodMonthly {
		return start.AddDate(0, 1, 0)
	}
	return start.AddDate(0, 0, 7)
}
