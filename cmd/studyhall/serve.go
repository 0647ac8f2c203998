package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/spf13/cobra"

	"github.com/studyhall-app/studyhall/internal/bootstrap"
	"github.com/studyhall-app/studyhall/internal/database"
	"github.com/studyhall-app/studyhall/internal/leaderboard"
	"github.com/studyhall-app/studyhall/internal/points"
	"github.com/studyhall-app/studyhall/internal/review"
	"github.com/studyhall-app/studyhall/internal/server"
	"github.com/studyhall-app/studyhall/internal/worker"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server, the award worker and the bonus sweeps",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddShutdownHook("database", func(ctx context.Context) error {
		return db.Close()
	})

	scheduleRepository := review.NewDBScheduleRepository(db)
	ledgerRepository := points.NewDBLedgerRepository(db)

	scheduler := review.NewScheduler(scheduleRepository)
	ledger := points.NewLedger(points.NewPolicy(), ledgerRepository)
	aggregator := leaderboard.NewAggregator(ledgerRepository)
	awardWorker := worker.NewAwardWorker(ledger, cfg.Worker.QueueSize, cfg.Worker.MaxRetryAttempts)
	sweeper := worker.NewBonusSweeper(ledger, ledgerRepository, cfg.Bonus)

	cron := gocron.NewScheduler(time.UTC)
	if err := sweeper.Schedule(cron); err != nil {
		return fmt.Errorf("schedule bonus sweeps: %w", err)
	}
	cron.StartAsync()
	app.AddShutdownHook("bonus scheduler", func(ctx context.Context) error {
		cron.Stop()
		return nil
	})

	startAwardWorker(app, awardWorker)

	handler := server.NewHandler(scheduler, awardWorker, aggregator)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.CORSMiddleware(handler.Router(), cfg.Server.CORS.AllowedOrigins),
	}
	app.AddShutdownHook("http server", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Info("Starting server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

// startAwardWorker runs the worker on its own context and registers the
// shutdown hook that stops and drains it. The hook must be registered
// before the HTTP server's: hooks run LIFO, so the server stops accepting
// requests before the queue drains and late enqueues are still processed.
func startAwardWorker(app *bootstrap.App, awardWorker *worker.AwardWorker) {
	workerCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		awardWorker.Run(workerCtx)
		close(done)
	}()
	app.AddShutdownHook("award worker", func(ctx context.Context) error {
		cancel()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}
