// Package main is the entry point for the Budgetbook API server.
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
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/budgetbook/backend/config"
	"github.com/budgetbook/backend/internal/application/usecase/scheduled"
	"github.com/budgetbook/backend/internal/infra/db"
	"github.com/budgetbook/backend/internal/infra/dependency"
	"github.com/budgetbook/backend/internal/integration/events"
	"github.com/budgetbook/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Budgetbook API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(persistence.Models()...); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Wire dependencies; this loads the document into memory
	injector, err := dependency.NewInjector(context.Background(), cfg, database.DB(), database.HealthCheck)
	if err != nil {
		slog.Error("Failed to load document", "error", err)
		os.Exit(1)
	}
	slog.Info("Document loaded")

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Root context canceled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	// HTTP server
	group.Go(func() error {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Shut the server down when the context is canceled
	group.Go(func() error {
		<-groupCtx.Done()

		slog.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	// Change event forwarding to the broker, when configured
	if cfg.AMQP.URL != "" {
		publisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			slog.Error("Failed to connect to event broker", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Error("Failed to close event publisher", "error", err)
			}
		}()

		changeEvents, unsubscribe := injector.Doc.Subscribe(0)
		defer unsubscribe()

		group.Go(func() error {
			events.Forward(groupCtx, changeEvents, publisher, logger)
			return nil
		})
		slog.Info("Change event publishing enabled", "exchange", cfg.AMQP.Exchange)
	}

	// Scheduled transaction worker
	if cfg.Scheduler.Enabled {
		group.Go(func() error {
			runMaterializer(groupCtx, injector.MaterializeUseCase, cfg.Scheduler.Interval, logger)
			return nil
		})
		slog.Info("Scheduled transaction worker started", "interval", cfg.Scheduler.Interval.String())
	}

	if err := group.Wait(); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	// Persist the final state before exiting
	saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := injector.Store.Save(saveCtx, injector.Doc); err != nil {
		slog.Error("Failed to save document on shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// runMaterializer turns due scheduled transactions into ledger transactions,
// once at startup and then on every tick.
func runMaterializer(ctx context.Context, uc *scheduled.MaterializeScheduledUseCase, interval time.Duration, logger *slog.Logger) {
	materialize := func() {
		output, err := uc.Execute(ctx, scheduled.MaterializeScheduledInput{})
		if err != nil {
			logger.Error("Failed to materialize scheduled transactions", "error", err)
			return
		}
		if output.Created > 0 {
			logger.Info("Materialized scheduled transactions", "created", output.Created)
		}
	}

	materialize()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			materialize()
		}
	}
}
