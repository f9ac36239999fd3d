// Package main is the entry point for the Side Quest API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for goose
	"github.com/joho/godotenv"

	"github.com/pkordes/sidequest/internal/auth"
	"github.com/pkordes/sidequest/internal/cache"
	"github.com/pkordes/sidequest/internal/config"
	"github.com/pkordes/sidequest/internal/handler"
	"github.com/pkordes/sidequest/internal/handler/gen"
	"github.com/pkordes/sidequest/internal/middleware"
	"github.com/pkordes/sidequest/internal/notify"
	"github.com/pkordes/sidequest/internal/repo"
	"github.com/pkordes/sidequest/internal/service"
	"github.com/pkordes/sidequest/migrations"
	"github.com/pkordes/sidequest/spec"
)

// publicPaths are served without a bearer token.
var publicPaths = []string{"/healthz", "/auth/register", "/auth/login", "/openapi.yaml"}

func main() {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Database ---------------------------------------------------------
	if err := migrate(ctx, cfg.DatabaseURL); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Repositories -----------------------------------------------------
	users := repo.NewUserRepo(pool)
	trips := repo.NewTripRepo(pool)
	participants := repo.NewParticipantRepo(pool)
	prefs := repo.NewPreferenceRepo(pool)

	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
		prefs = cache.NewPreferenceCache(prefs, rdb, cfg.PreferenceCacheTTL, logger)
		slog.Info("preference cache enabled", "ttl", cfg.PreferenceCacheTTL)
	}

	// --- Notifications ----------------------------------------------------
	var notifier notify.Notifier = notify.Nop{}
	if cfg.MQTTBrokerURL != "" {
		mq, err := notify.NewMQTT(cfg.MQTTBrokerURL, "sidequest-api-"+uuid.NewString()[:8], cfg.MQTTTopicPrefix)
		if err != nil {
			slog.Error("failed to connect to mqtt broker", "error", err)
			os.Exit(1)
		}
		defer mq.Close()
		notifier = mq
		slog.Info("invite notifications enabled", "broker", cfg.MQTTBrokerURL)
	}

	// --- Services ---------------------------------------------------------
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	server := handler.NewServer(
		service.NewAuthService(users, tokens),
		service.NewPreferenceService(prefs),
		service.NewRecommendationService(prefs),
		service.NewTripService(trips, participants, prefs),
		service.NewParticipantService(trips, participants, users, notifier, logger),
		service.NewExportService(trips),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit → authentication.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewAuthenticator(tokens, publicPaths...))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	strict := gen.NewStrictHandlerWithOptions(server, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  handler.RequestErrorHandler,
		ResponseErrorHandlerFunc: handler.NewResponseErrorHandler(logger),
	})
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: handler.RequestErrorHandler,
	})

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate brings the schema up to date using the embedded goose migrations.
func migrate(ctx context.Context, databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := migrations.Up(ctx, db)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		slog.Info("migrations applied", "versions", applied)
	}
	return nil
}
