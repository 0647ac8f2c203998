package points

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/points/mock_repository.go -package=mock_points

// ErrDuplicateEvent is returned by Insert when a row with the same dedupe
// key already exists. Concurrent duplicate attempts race on the unique key;
// exactly one insert wins and every loser observes this error.
var ErrDuplicateEvent = errors.New("duplicate activity event")

// mysqlDuplicateEntry is the server error number for unique key violations.
const mysqlDuplicateEntry = 1062

// LedgerRepository defines storage operations for activity events.
type LedgerRepository interface {
	Insert(ctx context.Context, event *ActivityEvent) error
	TotalsBetween(ctx context.Context, from, to time.Time) ([]StudentTotal, error)
	CountEventsBetween(ctx context.Context, from, to time.Time) ([]StudentEventCount, error)
}

// DBLedgerRepository implements LedgerRepository using MySQL.
type DBLedgerRepository struct {
	db *sqlx.DB
}

// NewDBLedgerRepository creates a new DBLedgerRepository.
func NewDBLedgerRepository(db *sqlx.DB) *DBLedgerRepository {
	return &DBLedgerRepository{db: db}
}

// Insert appends one ledger row. Idempotency is enforced by the unique key
// on dedupe_key, never by a read-then-write check.
func (r *DBLedgerRepository) Insert(ctx context.Context, event *ActivityEvent) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO activity_events (student_id, activity_type, points, related_entity_id, dedupe_key, occurred_at) VALUES (?, ?, ?, ?, ?, ?)",
		event.StudentID, event.ActivityType, event.Points,
		event.RelatedEntityID, event.DedupeKey, event.OccurredAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return fmt.Errorf("dedupe key %s: %w", event.DedupeKey, ErrDuplicateEvent)
		}
		return fmt.Errorf("insert activity event: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		event.ID = id
	}
	return nil
}

// TotalsBetween sums points per student over occurred_at in [from, to).
// A single statement, so readers never observe a partially applied
// multi-grant award.
func (r *DBLedgerRepository) TotalsBetween(ctx context.Context, from, to time.Time) ([]StudentTotal, error) {
	var totals []StudentTotal
	if err := r.db.SelectContext(ctx, &totals,
		"SELECT student_id, SUM(points) AS total_points FROM activity_events WHERE occurred_at >= ? AND occurred_at < ? GROUP BY student_id",
		from, to); err != nil {
		return nil, fmt.Errorf("sum activity points: %w", err)
	}
	return totals, nil
}

// CountEventsBetween counts ledger entries per student over occurred_at in
// [from, to). Bonus grants themselves are excluded so bonuses never feed
// their own eligibility.
func (r *DBLedgerRepository) CountEventsBetween(ctx context.Context, from, to time.Time) ([]StudentEventCount, error) {
	var counts []StudentEventCount
	if err := r.db.SelectContext(ctx, &counts,
		"SELECT student_id, COUNT(*) AS events FROM activity_events WHERE occurred_at >= ? AND occurred_at < ? AND activity_type NOT IN (?, ?) GROUP BY student_id",
		from, to, ActivityWeeklyBonus, ActivityMonthlyBonus); err != nil {
		return nil, fmt.Errorf("count activity events: %w", err)
	}
	return counts, nil
}
