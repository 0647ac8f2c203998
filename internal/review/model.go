package review

import "time"

// FlashcardSchedule represents spaced-repetition state for one flashcard
// owned by one student. next_review_date always equals last_reviewed_at
// plus interval_days once a card has been reviewed.
type FlashcardSchedule struct {
	FlashcardID    int64      `db:"flashcard_id"`
	StudentID      int64      `db:"student_id"`
	IntervalDays   int        `db:"interval_days"`
	EaseFactor     float64    `db:"ease_factor"`
	LastReviewedAt *time.Time `db:"last_reviewed_at"`
	NextReviewDate time.Time  `db:"next_review_date"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// SchedulePatch lists the only schedule fields a review is permitted to
// change. Nil fields are left untouched by ApplyPatch.
type SchedulePatch struct {
	IntervalDays   *int
	EaseFactor     *float64
	LastReviewedAt *time.Time
	NextReviewDate *time.Time
}

// NewDefaultSchedule returns the schedule created alongside a new flashcard:
// a one-day interval at the default ease factor, due immediately.
func NewDefaultSchedule(flashcardID, studentID int64, now time.Time) FlashcardSchedule {
	return FlashcardSchedule{
		FlashcardID:    flashcardID,
		StudentID:      studentID,
		IntervalDays:   DefaultIntervalDays,
		EaseFactor:     DefaultEaseFactor,
		NextReviewDate: now,
	}
}
