// Package worker runs the asynchronous side of point awarding: a bounded
// award queue and periodic bonus sweeps.
package worker

import (
	"context"
	"errors"
	"log/slog"

	"github.com/avast/retry-go"

	"github.com/studyhall-app/studyhall/internal/points"
)

// AwardRequest is one queued activity-completion award.
type AwardRequest struct {
	StudentID       int64
	ActivityType    points.ActivityType
	RelatedEntityID *int64
	Outcome         points.Outcome
}

// Awarder records point grants for completion events.
type Awarder interface {
	Award(ctx context.Context, studentID int64, activityType points.ActivityType, relatedEntityID *int64, outcome points.Outcome) ([]points.GrantResult, error)
}

// AwardWorker decouples ledger writes from user-facing completion handlers.
// Handlers enqueue and return immediately; the worker retries transient
// storage failures a bounded number of times and otherwise only logs.
// Re-running an award is safe because the ledger is idempotent.
type AwardWorker struct {
	ledger           Awarder
	queue            chan AwardRequest
	maxRetryAttempts int
}

// NewAwardWorker creates a worker with a queue of the given size.
func NewAwardWorker(ledger Awarder, queueSize, maxRetryAttempts int) *AwardWorker {
	return &AwardWorker{
		ledger:           ledger,
		queue:            make(chan AwardRequest, queueSize),
		maxRetryAttempts: maxRetryAttempts,
	}
}

// Enqueue submits an award request without blocking. When the queue is full
// the request is dropped and logged; award delivery is best effort.
func (w *AwardWorker) Enqueue(req AwardRequest) bool {
	select {
	case w.queue <- req:
		return true
	default:
		slog.Warn("award queue full, dropping request",
			"studentID", req.StudentID,
			"activityType", req.ActivityType)
		return false
	}
}

// Run processes queued awards until ctx is cancelled, then drains whatever
// is already queued before returning.
func (w *AwardWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case req := <-w.queue:
			w.process(ctx, req)
		}
	}
}

func (w *AwardWorker) drain() {
	for {
		select {
		case req := <-w.queue:
			w.process(context.Background(), req)
		default:
			return
		}
	}
}

// process runs one award with bounded retries. Failures are logged, never
// propagated: the primary completion flow has already answered the user.
func (w *AwardWorker) process(ctx context.Context, req AwardRequest) {
	var results []points.GrantResult

	err := retry.Do(
		func() error {
			var awardErr error
			results, awardErr = w.ledger.Award(ctx, req.StudentID, req.ActivityType, req.RelatedEntityID, req.Outcome)
			if awardErr != nil {
				if !isRetryableAwardError(awardErr) {
					return retry.Unrecoverable(awardErr)
				}
				return awardErr
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(w.maxRetryAttempts)+1),
	)
	if err != nil {
		slog.Error("award failed",
			"studentID", req.StudentID,
			"activityType", req.ActivityType,
			"error", err)
		return
	}

	for _, result := range results {
		if !result.Awarded {
			slog.Info("duplicate award skipped",
				"studentID", req.StudentID,
				"activityType", result.ActivityType)
		}
	}
}

// isRetryableAwardError reports whether a failed award is worth re-running.
// Malformed input never fixes itself; storage errors might.
func isRetryableAwardError(err error) bool {
	return !errors.Is(err, points.ErrUnknownActivity) &&
		!errors.Is(err, points.ErrInvalidStudent) &&
		!errors.Is(err, points.ErrInvalidRelatedEntity)
}
