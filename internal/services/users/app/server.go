// Package server wires the users REST API, its storage, and the HTTP lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/louisbranch/staffbook/internal/platform/id"
	"github.com/louisbranch/staffbook/internal/platform/logging"
	"github.com/louisbranch/staffbook/internal/platform/telemetry/metrics"
	"github.com/louisbranch/staffbook/internal/platform/timeouts"
	"github.com/louisbranch/staffbook/internal/services/users/api"
	"github.com/louisbranch/staffbook/internal/services/users/seed"
	"github.com/louisbranch/staffbook/internal/services/users/storage"
	userspostgres "github.com/louisbranch/staffbook/internal/services/users/storage/postgres"
	userssqlite "github.com/louisbranch/staffbook/internal/services/users/storage/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// Config holds users server settings.
type Config struct {
	HTTPAddr string
	// DBPath is the SQLite file used when DatabaseURL is empty.
	DBPath string
	// DatabaseURL selects Postgres storage when set.
	DatabaseURL    string
	SeedPath       string
	CreateResponse directory.CreateResponseMode
}

// Server hosts the users REST API and storage lifecycle.
type Server struct {
	listener   net.Listener
	httpServer *http.Server
	store      storage.UserStore
	logger     *zap.Logger
}

// New opens storage, applies the optional seed, and binds cfg.HTTPAddr.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if path := strings.TrimSpace(cfg.SeedPath); path != "" {
		records, err := seed.Load(path)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		inserted, err := seed.Apply(ctx, store, records, id.NewID)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		logger.Info("seeded users", zap.String("path", path), zap.Int("inserted", inserted))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics, err := metrics.NewHTTPMetrics(registry, "users")
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	usersHandler := api.NewHandler(store, api.Options{
		CreateResponse: cfg.CreateResponse,
		NewID:          id.NewID,
		Logger:         logger,
	})
	mux := http.NewServeMux()
	mux.Handle(api.UsersPath, usersHandler)
	mux.Handle(api.UsersPath+"/", usersHandler)
	mux.Handle("GET /metrics", metrics.Handler(registry))
	mux.HandleFunc("GET /up", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	listener, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("listen on %s: %w", cfg.HTTPAddr, err)
	}

	handler := logging.RequestLogger(logger)(httpMetrics.Middleware()(mux))
	return &Server{
		listener: listener,
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store:  store,
		logger: logger,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a users server until context cancellation.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	server, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve handles requests until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	s.logger.Info("users server listening", zap.String("addr", s.Addr()))
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown users server: %w", err)
		}
		if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve users: %w", err)
		}
		return nil
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve users: %w", err)
	}
}

// Close releases listener and storage resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("close users store", zap.Error(err))
		}
		s.store = nil
	}
}

func openStore(ctx context.Context, cfg Config) (storage.UserStore, error) {
	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		store, err := userspostgres.Open(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("open users postgres store: %w", err)
		}
		return store, nil
	}
	path := strings.TrimSpace(cfg.DBPath)
	if path == "" {
		path = filepath.Join("data", "users.db")
	}
	if dir := filepath.Dir(path); dir != "." && path != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := userssqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open users sqlite store: %w", err)
	}
	return store, nil
}
