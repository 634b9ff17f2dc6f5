package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"sync"

	"github.com/ashleyjkell/craftidad-landing/internal/auth"
	"github.com/ashleyjkell/craftidad-landing/internal/icons"
	"github.com/ashleyjkell/craftidad-landing/internal/store"
)

type Server struct {
	version    string
	port       string
	server     *http.Server
	assets     http.FileSystem
	sessions   map[string]session
	sessionsMu sync.RWMutex
	store      store.Store
	limiter    *auth.LoginLimiter
	icons      *icons.Client
}

func NewServer(version string, port string, assets http.FileSystem, st store.Store, limiter *auth.LoginLimiter, iconClient *icons.Client) *Server {

	s := &Server{
		version:  version,
		port:     port,
		assets:   assets,
		sessions: make(map[string]session),
		store:    st,
		limiter:  limiter,
		icons:    iconClient,
	}

	s.server = &http.Server{
		Addr:    ":" + port,
		Handler: s.Routes(),
	}

	return s
}

func (s *Server) Start() {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *Server) Shutdown(ctx context.Context) {
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Failed to shut down server", "error", err)
	}
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}
