package review

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrScheduleNotFound is returned when no schedule exists for the given
// flashcard and student pair.
var ErrScheduleNotFound = errors.New("flashcard schedule not found")

// Scheduler records practice results against stored flashcard schedules.
type Scheduler struct {
	repository ScheduleRepository
	now        func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(repository ScheduleRepository) *Scheduler {
	return &Scheduler{
		repository: repository,
		now:        time.Now,
	}
}

// NewSchedulerWithClock creates a Scheduler with an injected clock for tests.
func NewSchedulerWithClock(repository ScheduleRepository, now func() time.Time) *Scheduler {
	return &Scheduler{
		repository: repository,
		now:        now,
	}
}

// Record applies a recall quality grade to the schedule of the given
// flashcard and persists the result as a single-row update. It returns
// ErrScheduleNotFound when the flashcard does not exist or does not belong
// to the student; nothing is written in that case.
func (s *Scheduler) Record(ctx context.Context, flashcardID, studentID int64, quality int) (*FlashcardSchedule, error) {
	schedule, err := s.repository.FindByFlashcard(ctx, flashcardID, studentID)
	if err != nil {
		return nil, fmt.Errorf("find schedule for flashcard %d: %w", flashcardID, err)
	}
	if schedule == nil {
		return nil, fmt.Errorf("flashcard %d for student %d: %w", flashcardID, studentID, ErrScheduleNotFound)
	}

	now := s.now()
	computed := Compute(schedule.IntervalDays, schedule.EaseFactor, quality, now)

	patch := SchedulePatch{
		IntervalDays:   &computed.IntervalDays,
		EaseFactor:     &computed.EaseFactor,
		LastReviewedAt: &now,
		NextReviewDate: &computed.NextReviewDate,
	}
	if err := s.repository.ApplyPatch(ctx, flashcardID, studentID, patch); err != nil {
		return nil, fmt.Errorf("persist schedule for flashcard %d: %w", flashcardID, err)
	}

	schedule.IntervalDays = computed.IntervalDays
	schedule.EaseFactor = computed.EaseFactor
	schedule.LastReviewedAt = &now
	schedule.NextReviewDate = computed.NextReviewDate
	return schedule, nil
}

// CreateDefault creates the initial schedule for a newly created flashcard.
func (s *Scheduler) CreateDefault(ctx context.Context, flashcardID, studentID int64) (*FlashcardSchedule, error) {
	schedule := NewDefaultSchedule(flashcardID, studentID, s.now())
	if err := s.repository.Create(ctx, &schedule); err != nil {
		return nil, fmt.Errorf("create default schedule for flashcard %d: %w", flashcardID, err)
	}
	return &schedule, nil
}

// ListDue returns the student's flashcards due for review at asOf.
func (s *Scheduler) ListDue(ctx context.Context, studentID int64, asOf time.Time, limit int) ([]FlashcardSchedule, error) {
	schedules, err := s.repository.ListDue(ctx, studentID, asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("list due schedules for student %d: %w", studentID, err)
	}
	return schedules, nil
}
