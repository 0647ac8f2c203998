// Package points implements the activity points ledger: idempotent point
// grants for completed learning activities.
package points

import (
	"errors"
	"fmt"
)

// ActivityType identifies the kind of completed activity a grant rewards.
type ActivityType string

const (
	ActivityTaskCompletion   ActivityType = "task_completion"
	ActivityQuizCompletion   ActivityType = "quiz_completion"
	ActivityQuizPerfectScore ActivityType = "quiz_perfect_score"
	ActivityStudySession     ActivityType = "study_session"
	ActivityRevision         ActivityType = "revision"
	ActivityWeeklyBonus      ActivityType = "weekly_bonus"
	ActivityMonthlyBonus     ActivityType = "monthly_bonus"
)

// ErrUnknownActivity is returned for activity types outside the known set.
var ErrUnknownActivity = errors.New("unknown activity type")

// basePoints is the point value of each activity type.
var basePoints = map[ActivityType]int{
	ActivityTaskCompletion:   10,
	ActivityQuizCompletion:   15,
	ActivityQuizPerfectScore: 10,
	ActivityStudySession:     5,
	ActivityRevision:         8,
	ActivityWeeklyBonus:      50,
	ActivityMonthlyBonus:     100,
}

// Valid reports whether the activity type is a known one.
func (t ActivityType) Valid() bool {
	_, ok := basePoints[t]
	return ok
}

// ParseActivityType converts a wire string into an ActivityType.
func ParseActivityType(s string) (ActivityType, error) {
	t := ActivityType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownActivity)
	}
	return t, nil
}
