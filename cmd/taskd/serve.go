package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	taskbackend "github.com/prajwal2403/task-backend"
	"github.com/prajwal2403/task-backend/httpapi"
	"github.com/prajwal2403/task-backend/internal/logging"
	"github.com/prajwal2403/task-backend/internal/metrics"
	"github.com/prajwal2403/task-backend/policy"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the rotation engine, scheduler, and HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	cfg := taskbackend.DefaultConfig()
	if configPath != "" {
		loaded, err := taskbackend.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if listenAddr != "" {
		cfg.HTTP.ListenAddr = listenAddr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := logging.NewSlog(slog.New(handler))

	collector := metrics.NewPrometheus(nil, cfg.MetricsNamespace)

	pol, err := policy.ByName(cfg.RotationPolicy)
	if err != nil {
		return err
	}

	eng, err := taskbackend.NewEngine(&cfg, pol,
		taskbackend.WithLogger(logger),
		taskbackend.WithMetrics(collector),
	)
	if err != nil {
		return err
	}

	// Initial rotation so the table is populated before the first request.
	if err := eng.Rotate(taskbackend.TriggerStartup); err != nil {
		return err
	}

	sched, err := taskbackend.NewScheduler(eng, &cfg,
		taskbackend.WithLogger(logger),
		taskbackend.WithMetrics(collector),
	)
	if err != nil {
		return err
	}

	api, err := httpapi.NewServer(eng, cfg, httpapi.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := sched.Start(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.HTTP.ListenAddr,
		Handler: api.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.HTTP.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	if err := sched.Stop(shutdownCtx); err != nil && !errors.Is(err, taskbackend.ErrNotStarted) {
		logger.Error("scheduler shutdown failed", "error", err)
	}

	return nil
}
