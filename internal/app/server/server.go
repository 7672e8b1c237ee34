package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"signhub/internal/app/server/api"
	"signhub/internal/app/server/config"
	"signhub/internal/app/server/metrics"
	"signhub/internal/infrastructure/storage"
)

const readHeaderTimeout = 5 * time.Second

type App struct {
	cfg        *config.Config
	log        *slog.Logger
	store      storage.Storage
	HTTPServer *http.Server
}

// New opens storage and builds the HTTP server without starting it.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	mux, err := api.New(cfg, store, metrics.New(), log)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("build api: %w", err)
	}

	return &App{
		cfg:   cfg,
		log:   log.With("component", "server"),
		store: store,
		HTTPServer: &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Run serves until ctx is cancelled, then shuts down within the configured timeout.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server", "address", a.cfg.Server.RunAddress, "storage", a.cfg.DB.Driver)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			_ = a.store.Close()
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	return a.Shutdown()
}

func (a *App) Shutdown() error {
	a.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.HTTPServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := a.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		a.log.Error("shutdown finished with errors", "error", err)
		return err
	}
	a.log.Info("server stopped")
	return nil
}
