package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/review/mock_repository.go -package=mock_review

// ScheduleRepository defines storage operations for flashcard schedules.
type ScheduleRepository interface {
	FindByFlashcard(ctx context.Context, flashcardID, studentID int64) (*FlashcardSchedule, error)
	Create(ctx context.Context, schedule *FlashcardSchedule) error
	ApplyPatch(ctx context.Context, flashcardID, studentID int64, patch SchedulePatch) error
	ListDue(ctx context.Context, studentID int64, asOf time.Time, limit int) ([]FlashcardSchedule, error)
}

// DBScheduleRepository implements ScheduleRepository using MySQL.
type DBScheduleRepository struct {
	db *sqlx.DB
}

// NewDBScheduleRepository creates a new DBScheduleRepository.
func NewDBScheduleRepository(db *sqlx.DB) *DBScheduleRepository {
	return &DBScheduleRepository{db: db}
}

// FindByFlashcard returns the schedule for a flashcard and student, or nil if none exists.
func (r *DBScheduleRepository) FindByFlashcard(ctx context.Context, flashcardID, studentID int64) (*FlashcardSchedule, error) {
	var schedule FlashcardSchedule
	err := r.db.GetContext(ctx, &schedule,
		"SELECT * FROM flashcard_schedules WHERE flashcard_id = ? AND student_id = ?",
		flashcardID, studentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load flashcard schedule: %w", err)
	}
	return &schedule, nil
}

// Create inserts a new schedule row.
func (r *DBScheduleRepository) Create(ctx context.Context, schedule *FlashcardSchedule) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO flashcard_schedules (flashcard_id, student_id, interval_days, ease_factor, last_reviewed_at, next_review_date) VALUES (?, ?, ?, ?, ?, ?)",
		schedule.FlashcardID, schedule.StudentID, schedule.IntervalDays,
		schedule.EaseFactor, schedule.LastReviewedAt, schedule.NextReviewDate)
	if err != nil {
		return fmt.Errorf("insert flashcard schedule: %w", err)
	}
	return nil
}

// ApplyPatch updates only the fields set on the patch, as a single-row update.
func (r *DBScheduleRepository) ApplyPatch(ctx context.Context, flashcardID, studentID int64, patch SchedulePatch) error {
	var assignments []string
	var args []interface{}

	if patch.IntervalDays != nil {
		assignments = append(assignments, "interval_days = ?")
		args = append(args, *patch.IntervalDays)
	}
	if patch.EaseFactor != nil {
		assignments = append(assignments, "ease_factor = ?")
		args = append(args, *patch.EaseFactor)
	}
	if patch.LastReviewedAt != nil {
		assignments = append(assignments, "last_reviewed_at = ?")
		args = append(args, *patch.LastReviewedAt)
	}
	if patch.NextReviewDate != nil {
		assignments = append(assignments, "next_review_date = ?")
		args = append(args, *patch.NextReviewDate)
	}
	if len(assignments) == 0 {
		return nil
	}

	args = append(args, flashcardID, studentID)
	query := fmt.Sprintf(
		"UPDATE flashcard_schedules SET %s WHERE flashcard_id = ? AND student_id = ?",
		strings.Join(assignments, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update flashcard schedule: %w", err)
	}
	return nil
}

// ListDue returns up to limit schedules due at asOf, most overdue first.
func (r *DBScheduleRepository) ListDue(ctx context.Context, studentID int64, asOf time.Time, limit int) ([]FlashcardSchedule, error) {
	var schedules []FlashcardSchedule
	if err := r.db.SelectContext(ctx, &schedules,
		"SELECT * FROM flashcard_schedules WHERE student_id = ? AND next_review_date <= ? ORDER BY next_review_date, flashcard_id LIMIT ?",
		studentID, asOf, limit); err != nil {
		return nil, fmt.Errorf("list due flashcard schedules: %w", err)
	}
	return schedules, nil
}
