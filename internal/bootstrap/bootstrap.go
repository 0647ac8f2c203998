// Package bootstrap provides application lifecycle helpers.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// DefaultShutdownTimeout bounds how long shutdown hooks may run in total.
const DefaultShutdownTimeout = 15 * time.Second

type shutdownHook struct {
	name string
	fn   func(ctx context.Context) error
}

// App manages application lifecycle with graceful shutdown support.
type App struct {
	shutdownTimeout time.Duration

	mu    sync.Mutex
	hooks []shutdownHook
}

// New creates a new App with the default shutdown timeout.
func New() *App {
	return &App{shutdownTimeout: DefaultShutdownTimeout}
}

// AddShutdownHook registers a named function to call during graceful
// shutdown. Hooks run in reverse registration order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, shutdownHook{name: name, fn: fn})
}

// Run sets up signal handling and executes the run function.
// On SIGINT or SIGTERM it calls the registered shutdown hooks in LIFO
// order, bounded by the shutdown timeout. If run returns an error before
// a signal arrives, that error is returned and hooks do not run.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer shutdownCancel()
		return a.shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	var errs []error
	for i := len(a.hooks) - 1; i >= 0; i-- {
		hook := a.hooks[i]
		slog.Debug("Running shutdown hook", slog.String("name", hook.name))
		if err := hook.fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown %s: %w", hook.name, err))
		}
	}
	return errors.Join(errs...)
}
