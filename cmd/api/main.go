// Package main is the entry point for the Hobby Tracker API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mkessler/hobby-tracker/internal/config"
	"github.com/mkessler/hobby-tracker/internal/handler"
	"github.com/mkessler/hobby-tracker/internal/middleware"
	"github.com/mkessler/hobby-tracker/internal/repo"
	"github.com/mkessler/hobby-tracker/internal/seed"
	"github.com/mkessler/hobby-tracker/internal/service"
)

// maxBodySize caps incoming request bodies. Hobby payloads are a few hundred
// bytes; 1 MiB leaves generous headroom.
const maxBodySize = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage backend --------------------------------------------------
	// Both backends implement the same repo.HobbyRepo contract; everything
	// above this point is identical whichever one is selected.
	var hobbyRepo repo.HobbyRepo
	switch cfg.Storage {
	case config.StorageSQLite:
		db, err := repo.OpenSQLite(context.Background(), cfg.DBPath)
		if err != nil {
			slog.Error("failed to open database", "path", cfg.DBPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		hobbyRepo = repo.NewSQLiteHobbyRepo(db, logger)
		slog.Info("using sqlite storage", "path", cfg.DBPath)
	default:
		hobbyRepo = repo.NewMemoryHobbyRepo()
		slog.Info("using in-memory storage")
	}

	hobbies := service.NewHobbyService(hobbyRepo)

	// --- Seed data --------------------------------------------------------
	// Populate is idempotent: it does nothing when records already exist.
	if cfg.Seed {
		n, err := seed.Populate(context.Background(), hobbies)
		if err != nil {
			slog.Error("failed to seed sample hobbies", "error", err)
			os.Exit(1)
		}
		slog.Info("seeded sample hobbies", "count", n)
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body size cap.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))

	r.Mount("/", handler.NewServer(hobbies).Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "storage", cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
