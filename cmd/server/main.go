// Package main is the entry point for the QSR dashboard API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/techbytecraft/QSR/internal/domain/restaurant"
	v1 "github.com/techbytecraft/QSR/internal/infrastructure/http/v1"
	"github.com/techbytecraft/QSR/internal/infrastructure/http/v1/handlers"
	"github.com/techbytecraft/QSR/internal/infrastructure/storage/memory"
	"github.com/techbytecraft/QSR/internal/infrastructure/storage/postgres"
	"github.com/techbytecraft/QSR/internal/insight"
	"github.com/techbytecraft/QSR/pkg/logger"
)

func main() {
	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting qsr server")

	// --- Storage ---
	// DATABASE_URL selects the Postgres backend; without it state lives in
	// memory, which is enough for a single-node deployment.
	var (
		repo restaurant.Repository
		db   handlers.Pinger
	)
	if dsn := getEnv("DATABASE_URL", ""); dsn != "" {
		pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
		if err != nil {
			log.Fatalw("failed to connect to database", "error", err)
		}
		defer pool.Close()

		pgRepo := postgres.NewRestaurantRepo(pool)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Fatalw("failed to ensure schema", "error", err)
		}

		repo = pgRepo
		db = pool
		log.Info("database connection established")
	} else {
		repo = memory.NewRestaurantRepo()
		log.Info("using in-memory storage")
	}

	store := restaurant.NewStore(repo)

	// --- Insights ---
	var model llms.Model
	if apiKey := getEnv("OPENAI_API_KEY", ""); apiKey != "" {
		model, err = insight.NewOpenAIModel(apiKey, getEnv("OPENAI_MODEL", ""))
		if err != nil {
			log.Fatalw("failed to initialize model client", "error", err)
		}
		log.Info("ai insights enabled")
	} else {
		log.Warn("OPENAI_API_KEY not set, ai insights disabled")
	}
	insights := insight.NewService(model, store)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Store:    store,
		Logger:   log,
		DB:       db,
		Insights: insights,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
