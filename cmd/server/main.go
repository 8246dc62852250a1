/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the workforce coverage engine server. Handles
  configuration, store selection, dependency injection, and graceful
  shutdown.

STARTUP SEQUENCE:
  1. Load environment configuration (.env honored)
  2. Parse command-line flags (flags override environment)
  3. Build the snapshot store (JSON documents or SQLite)
  4. Wire the engine, handler, and router
  5. Start the server with graceful shutdown

COMMAND-LINE FLAGS:
  -port      HTTP server port
  -backend   Snapshot backend: "json" or "sqlite"
  -schedule  Path to the schedule snapshot JSON document
  -updates   Path to the update snapshot JSON document
  -db        SQLite database path (sqlite backend only);
             when -schedule/-updates are also set, the documents are
             staged into the database on boot

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Environment configuration
  - store/: Snapshot backends
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/warp/workforce-engine/api"
	"github.com/warp/workforce-engine/config"
	"github.com/warp/workforce-engine/store/jsonfile"
	"github.com/warp/workforce-engine/store/sqlite"
	"github.com/warp/workforce-engine/workforce"
)

func main() {
	cfg := config.Load()

	// Flags override environment configuration
	port := flag.Int("port", cfg.Port, "HTTP server port")
	backend := flag.String("backend", cfg.Backend, `snapshot backend ("json" or "sqlite")`)
	schedulePath := flag.String("schedule", cfg.SchedulePath, "schedule snapshot JSON path")
	updatesPath := flag.String("updates", cfg.UpdatesPath, "update snapshot JSON path")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path (sqlite backend)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	engine, cleanup, err := buildEngine(*backend, *schedulePath, *updatesPath, *dbPath, logger)
	if err != nil {
		logger.Fatal("Failed to initialize snapshot store", zap.Error(err))
	}
	defer cleanup()

	handler := api.NewHandler(engine, logger)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.Int("port", *port),
			zap.String("backend", *backend),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server stopped")
}

// buildEngine wires the snapshot sources for the selected backend and
// returns the engine plus a cleanup function for deferred teardown.
func buildEngine(backend, schedulePath, updatesPath, dbPath string, logger *zap.Logger) (*workforce.Engine, func(), error) {
	switch backend {
	case "json":
		store := jsonfile.New(schedulePath, updatesPath)
		return workforce.NewEngine(store, store), func() {}, nil

	case "sqlite":
		store, err := sqlite.New(dbPath)
		if err != nil {
			return nil, nil, err
		}
		if err := stageFromDocuments(store, schedulePath, updatesPath, logger); err != nil {
			store.Close()
			return nil, nil, err
		}
		return workforce.NewEngine(store, store), func() { store.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q (expected json or sqlite)", backend)
	}
}

// stageFromDocuments imports the JSON snapshot documents into the
// SQLite store when they are present, so a fresh database comes up
// loaded. Missing documents are fine: the database is assumed to have
// been staged by an external loader.
func stageFromDocuments(store *sqlite.Store, schedulePath, updatesPath string, logger *zap.Logger) error {
	ctx := context.Background()
	docs := jsonfile.New(schedulePath, updatesPath)

	schedule, err := docs.LoadSchedule(ctx)
	switch {
	case err == nil:
		if err := store.ImportSchedule(ctx, schedule); err != nil {
			return err
		}
		logger.Info("Staged schedule snapshot", zap.Int("entries", len(schedule.Entries)))
	case workforce.IsNotFound(err):
		logger.Info("No schedule document to stage", zap.String("path", schedulePath))
	default:
		return err
	}

	updates, err := docs.LoadUpdates(ctx)
	switch {
	case err == nil:
		if err := store.ImportUpdates(ctx, updates); err != nil {
			return err
		}
		logger.Info("Staged update snapshot", zap.Int("records", len(updates.Updates)))
	case workforce.IsNotFound(err):
		logger.Info("No update document to stage", zap.String("path", updatesPath))
	default:
		return err
	}

	return nil
}
