package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/studyhall-app/studyhall/internal/bootstrap"
	mock_points "github.com/studyhall-app/studyhall/internal/mocks/points"
	"github.com/studyhall-app/studyhall/internal/points"
	"github.com/studyhall-app/studyhall/internal/worker"
)

func TestStartAwardWorker_DrainsAfterServerStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_points.NewMockLedgerRepository(ctrl)

	inserted := make(chan string, 1)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *points.ActivityEvent) error {
			inserted <- event.DedupeKey
			return nil
		})

	ledger := points.NewLedger(points.NewPolicy(), repo)
	awardWorker := worker.NewAwardWorker(ledger, 8, 0)

	app := bootstrap.New()
	startAwardWorker(app, awardWorker)

	// Stands in for srv.Shutdown: a request still lands on the award queue
	// while the listener is closing. Registered after the worker hook, so
	// it runs before the worker hook on shutdown.
	app.AddShutdownHook("http server", func(ctx context.Context) error {
		require.True(t, awardWorker.Enqueue(worker.AwardRequest{
			StudentID:    3,
			ActivityType: points.ActivityTaskCompletion,
		}))
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	err := app.Run(ctx, func(ctx context.Context) error {
		cancel()
		<-ctx.Done()
		return nil
	})
	require.NoError(t, err)

	select {
	case key := <-inserted:
		assert.Equal(t, "3:task_completion:-", key)
	case <-time.After(2 * time.Second):
		t.Fatal("award enqueued during shutdown was never processed")
	}
}
