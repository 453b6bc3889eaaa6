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

	"github.com/joho/godotenv"

	"github.com/jasonjack1357-commits/DualRam.github.io/internal/pos"
	"github.com/jasonjack1357-commits/DualRam.github.io/internal/server"
	"github.com/jasonjack1357-commits/DualRam.github.io/internal/storage/sqlite"
	"github.com/jasonjack1357-commits/DualRam.github.io/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// Optional local overrides; missing .env is fine.
	_ = godotenv.Load()

	logging.Setup()

	addr := getEnv("ADDR", ":8080")
	dbPath := getEnv("DB_PATH", "./data/pos.db")
	staticPath := getEnv("STATIC_PATH", "./web/static")

	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage initialized", "database", dbPath)

	register, err := pos.Open(context.Background(), store)
	if err != nil {
		slog.Error("failed to open register", "error", err)
		os.Exit(1)
	}

	if _, err := os.Stat(staticPath); err != nil {
		slog.Warn("static directory not found, serving API only", "path", staticPath)
		staticPath = ""
	}

	router := server.NewRouter(server.NewHandler(register), staticPath)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
