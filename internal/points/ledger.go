package points

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidStudent is returned for non-positive student ids.
var ErrInvalidStudent = errors.New("invalid student id")

// ErrInvalidRelatedEntity is returned for negative related entity ids.
var ErrInvalidRelatedEntity = errors.New("invalid related entity id")

// Ledger records point grants for completed activities with at-most-once
// semantics per (student, activity type, related entity).
type Ledger struct {
	policy     *Policy
	repository LedgerRepository
	now        func() time.Time
}

// NewLedger creates a new Ledger.
func NewLedger(policy *Policy, repository LedgerRepository) *Ledger {
	return &Ledger{
		policy:     policy,
		repository: repository,
		now:        time.Now,
	}
}

// NewLedgerWithClock creates a Ledger with an injected clock for tests.
func NewLedgerWithClock(policy *Policy, repository LedgerRepository, now func() time.Time) *Ledger {
	return &Ledger{
		policy:     policy,
		repository: repository,
		now:        now,
	}
}

// Award records the grants earned by one completion event. Malformed input
// is rejected before any side effect. Each grant is inserted independently:
// a duplicate dedupe key makes that grant report Awarded=false without
// failing the call, and a storage failure on one grant does not stop the
// others from being attempted. The returned error joins any storage
// failures; results are returned either way.
func (l *Ledger) Award(ctx context.Context, studentID int64, activityType ActivityType, relatedEntityID *int64, outcome Outcome) ([]GrantResult, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("student %d: %w", studentID, ErrInvalidStudent)
	}
	if relatedEntityID != nil && *relatedEntityID < 0 {
		return nil, fmt.Errorf("related entity %d: %w", *relatedEntityID, ErrInvalidRelatedEntity)
	}

	grants, err := l.policy.GrantsFor(activityType, outcome)
	if err != nil {
		return nil, err
	}

	now := l.now()
	results := make([]GrantResult, 0, len(grants))
	var insertErrs []error
	for _, grant := range grants {
		event := &ActivityEvent{
			StudentID:       studentID,
			ActivityType:    grant.ActivityType,
			Points:          grant.Points,
			RelatedEntityID: relatedEntityID,
			DedupeKey:       DedupeKey(studentID, grant.ActivityType, relatedEntityID),
			OccurredAt:      now,
		}

		err := l.repository.Insert(ctx, event)
		switch {
		case errors.Is(err, ErrDuplicateEvent):
			results = append(results, GrantResult{
				ActivityType: grant.ActivityType,
				Points:       grant.Points,
				Awarded:      false,
			})
		case err != nil:
			insertErrs = append(insertErrs, err)
			results = append(results, GrantResult{
				ActivityType: grant.ActivityType,
				Points:       grant.Points,
				Awarded:      false,
			})
		default:
			results = append(results, GrantResult{
				ActivityType: grant.ActivityType,
				Points:       grant.Points,
				Awarded:      true,
				Event:        event,
			})
		}
	}

	return results, errors.Join(insertErrs...)
}
