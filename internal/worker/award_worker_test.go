package worker_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_points "github.com/studyhall-app/studyhall/internal/mocks/points"
	"github.com/studyhall-app/studyhall/internal/points"
	"github.com/studyhall-app/studyhall/internal/worker"
)

func TestAwardWorker_ProcessesQueuedAwards(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_points.NewMockLedgerRepository(ctrl)

	taskID := int64(12)
	inserted := make(chan *points.ActivityEvent, 1)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *points.ActivityEvent) error {
			inserted <- event
			return nil
		})

	ledger := points.NewLedger(points.NewPolicy(), repo)
	w := worker.NewAwardWorker(ledger, 8, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	ok := w.Enqueue(worker.AwardRequest{
		StudentID:       3,
		ActivityType:    points.ActivityTaskCompletion,
		RelatedEntityID: &taskID,
	})
	require.True(t, ok)

	select {
	case event := <-inserted:
		assert.Equal(t, "3:task_completion:12", event.DedupeKey)
		assert.Equal(t, 10, event.Points)
	case <-time.After(2 * time.Second):
		t.Fatal("award was not processed")
	}

	cancel()
	<-done
}

func TestAwardWorker_DrainsQueueOnShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_points.NewMockLedgerRepository(ctrl)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(3).Return(nil)

	ledger := points.NewLedger(points.NewPolicy(), repo)
	w := worker.NewAwardWorker(ledger, 8, 0)

	for i := int64(1); i <= 3; i++ {
		id := i
		require.True(t, w.Enqueue(worker.AwardRequest{
			StudentID:       i,
			ActivityType:    points.ActivityTaskCompletion,
			RelatedEntityID: &id,
		}))
	}

	// Run against an already-cancelled context: queued requests must still
	// be processed before Run returns.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Run(ctx)
}

func TestAwardWorker_EnqueueDropsWhenQueueFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_points.NewMockLedgerRepository(ctrl)

	ledger := points.NewLedger(points.NewPolicy(), repo)
	w := worker.NewAwardWorker(ledger, 1, 0)

	req := worker.AwardRequest{StudentID: 3, ActivityType: points.ActivityStudySession}
	assert.True(t, w.Enqueue(req))
	assert.False(t, w.Enqueue(req))
}

func TestAwardWorker_RetriesTransientFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_points.NewMockLedgerRepository(ctrl)

	gomock.InOrder(
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("insert activity event: connection refused")),
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
	)

	ledger := points.NewLedger(points.NewPolicy(), repo)
	w := worker.NewAwardWorker(ledger, 1, 2)

	require.True(t, w.Enqueue(worker.AwardRequest{
		StudentID:    3,
		ActivityType: points.ActivityStudySession,
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Run(ctx)
}

func TestAwardWorker_DoesNotRetryValidationFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_points.NewMockLedgerRepository(ctrl)
	// No Insert expectations: a bad activity type must never reach storage,
	// and must not be retried.

	ledger := points.NewLedger(points.NewPolicy(), repo)
	w := worker.NewAwardWorker(ledger, 1, 5)

	require.True(t, w.Enqueue(worker.AwardRequest{
		StudentID:    3,
		ActivityType: points.ActivityType("login"),
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Run(ctx)
}
