package points

import (
	"fmt"
	"strconv"
	"time"
)

// ActivityEvent is an immutable record of one point grant. Rows are
// append-only; the unique dedupe key enforces at most one grant per
// concrete completion.
type ActivityEvent struct {
	ID              int64        `db:"id"`
	StudentID       int64        `db:"student_id"`
	ActivityType    ActivityType `db:"activity_type"`
	Points          int          `db:"points"`
	RelatedEntityID *int64       `db:"related_entity_id"`
	DedupeKey       string       `db:"dedupe_key"`
	OccurredAt      time.Time    `db:"occurred_at"`
	CreatedAt       time.Time    `db:"created_at"`
}

// Outcome carries optional result details of a completed activity.
// TotalQuestions > 0 means a quiz score is present.
type Outcome struct {
	CorrectCount   int
	TotalQuestions int
}

// Perfect reports whether the outcome is a full-score quiz result.
func (o Outcome) Perfect() bool {
	return o.TotalQuestions > 0 && o.CorrectCount == o.TotalQuestions
}

// Grant is one point grant derived from an activity by the policy.
type Grant struct {
	ActivityType ActivityType
	Points       int
}

// GrantResult reports the outcome of recording one grant.
type GrantResult struct {
	ActivityType ActivityType   `json:"activity_type"`
	Points       int            `json:"points"`
	Awarded      bool           `json:"awarded"`
	Event        *ActivityEvent `json:"-"`
}

// StudentTotal is a per-student point sum over a time window.
type StudentTotal struct {
	StudentID   int64 `db:"student_id"`
	TotalPoints int   `db:"total_points"`
}

// StudentEventCount is a per-student count of ledger entries over a window.
type StudentEventCount struct {
	StudentID int64 `db:"student_id"`
	Events    int   `db:"events"`
}

// DedupeKey derives the uniqueness key for one grant. Grants without a
// related entity share the "-" placeholder so the key stays one-per-student
// for that activity type.
func DedupeKey(studentID int64, activityType ActivityType, relatedEntityID *int64) string {
	related := "-"
	if relatedEntityID != nil {
		related = strconv.FormatInt(*relatedEntityID, 10)
	}
	return fmt.Sprintf("%d:%s:%s", studentID, activityType, related)
}
