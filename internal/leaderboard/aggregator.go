package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/studyhall-app/studyhall/internal/points"
)

//go:generate mockgen -source=aggregator.go -destination=../mocks/leaderboard/mock_aggregator.go -package=mock_leaderboard

// TotalsReader provides per-student point sums over a time window.
type TotalsReader interface {
	TotalsBetween(ctx context.Context, from, to time.Time) ([]points.StudentTotal, error)
}

// Entry is one ranked leaderboard row. Derived on read, never stored.
type Entry struct {
	StudentID   int64 `json:"student_id"`
	TotalPoints int   `json:"total_points"`
	Rank        int   `json:"rank"`
}

// Aggregator computes ranked leaderboards from ledger entries.
type Aggregator struct {
	reader TotalsReader
}

// NewAggregator creates a new Aggregator.
func NewAggregator(reader TotalsReader) *Aggregator {
	return &Aggregator{reader: reader}
}

// Rank returns the leaderboard for the period containing asOf, ordered by
// total points descending. Equal totals are ordered by ascending student id
// and still receive distinct sequential ranks, so the ordering is fully
// deterministic.
func (a *Aggregator) Rank(ctx context.Context, period PeriodType, asOf time.Time) ([]Entry, error) {
	start := PeriodStart(period, asOf)
	end := PeriodEnd(period, start)

	totals, err := a.reader.TotalsBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("read totals for %s leaderboard: %w", period, err)
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].TotalPoints != totals[j].TotalPoints {
			return totals[i].TotalPoints > totals[j].TotalPoints
		}
		return totals[i].StudentID < totals[j].StudentID
	})

	entries := make([]Entry, len(totals))
	for i, total := range totals {
		entries[i] = Entry{
			StudentID:   total.StudentID,
			TotalPoints: total.TotalPoints,
			Rank:        i + 1,
		}
	}
	return entries, nil
}
