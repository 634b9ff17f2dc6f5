package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashleyjkell/craftidad-landing/internal/auth"
	"github.com/ashleyjkell/craftidad-landing/internal/icons"
	"github.com/ashleyjkell/craftidad-landing/internal/store"
	"github.com/ashleyjkell/craftidad-landing/server"
)

var (
	version = "dev"
)

//go:embed static/*
var staticFiles embed.FS

func main() {

	ctx := context.Background()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	st, err := store.New(dataDir)
	if err != nil {
		panic(fmt.Errorf("failed to open data directory: %w", err))
	}

	if err := st.EnsureDefaults(ctx); err != nil {
		panic(fmt.Errorf("failed to seed default documents: %w", err))
	}

	if err := bootstrapCredentials(ctx, st); err != nil {
		panic(fmt.Errorf("failed to bootstrap admin credentials: %w", err))
	}

	limiter := auth.NewLoginLimiter(auth.DefaultMaxAttempts, auth.DefaultWindow)
	defer limiter.Stop()

	srv := server.NewServer(version, port, http.FS(staticFiles), st, limiter, icons.NewClient())

	go srv.Start()

	slog.Info("Started server",
		slog.String("listen_addr", ":"+port),
		slog.String("version", version),
		slog.String("data_dir", dataDir),
	)
	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-si
	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}

// bootstrapCredentials writes the auth record from ADMIN_USERNAME and
// ADMIN_PASSWORD when both are set. Without them an existing record is left
// alone; if none exists either, the admin panel stays unreachable until the
// operator provides credentials.
func bootstrapCredentials(ctx context.Context, st store.Store) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")

	if username != "" && password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		if err := st.SetCredentials(ctx, username, hash); err != nil {
			return err
		}
		slog.Info("Admin credentials set from environment", slog.String("username", username))
		return nil
	}

	_, err := st.GetAuth(ctx)
	if errors.Is(err, store.ErrNotFound) {
		slog.Warn("No admin credentials configured; set ADMIN_USERNAME and ADMIN_PASSWORD to enable login")
		return nil
	}
	return err
}
