package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/louisbranch/staffbook/internal/platform/logging"
	"github.com/louisbranch/staffbook/internal/platform/telemetry/metrics"
	"github.com/louisbranch/staffbook/internal/platform/timeouts"
	"github.com/louisbranch/staffbook/internal/services/users/client"
	webapp "github.com/louisbranch/staffbook/internal/services/web/app"
	module "github.com/louisbranch/staffbook/internal/services/web/module"
	"github.com/louisbranch/staffbook/internal/services/web/modules"
	"github.com/louisbranch/staffbook/internal/services/web/modules/employees"
	"github.com/louisbranch/staffbook/internal/services/web/platform/httpx"
	"github.com/louisbranch/staffbook/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/staffbook/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/staffbook/internal/services/web/routepath"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// UsersBaseURL locates the users service. Empty mounts the directory
	// degraded.
	UsersBaseURL        string
	CreateResponse      directory.CreateResponseMode
	FilterScope         directory.FilterScope
	SessionTTL          time.Duration
	MaxSessions         int
	TrustForwardedProto bool
	// Registry receives the service collectors. Nil uses a fresh registry.
	Registry *prometheus.Registry
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

type healthResponse struct {
	Status  string          `json:"status"`
	Modules map[string]bool `json:"modules"`
}

// NewHandler builds the root handler: module routes plus the root redirect,
// health, and metrics endpoints behind the shared middleware.
func NewHandler(cfg Config, logger *zap.Logger) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	httpMetrics, err := metrics.NewHTTPMetrics(registry, "web")
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}
	clientMetrics, err := metrics.NewClientMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("register client metrics: %w", err)
	}

	var usersClient *client.Client
	if baseURL := strings.TrimSpace(cfg.UsersBaseURL); baseURL != "" {
		usersClient, err = client.New(baseURL, client.WithMetrics(clientMetrics))
		if err != nil {
			return nil, fmt.Errorf("users client: %w", err)
		}
	} else {
		logger.Warn("users base url is empty; employees module is degraded")
	}

	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	mods := modules.DefaultModules(modules.Dependencies{
		UsersClient: usersClient,
		Employees: employees.Config{
			Session: directory.Options{
				CreateResponseMode: cfg.CreateResponse,
				FilterScope:        cfg.FilterScope,
			},
			SessionTTL:  cfg.SessionTTL,
			MaxSessions: cfg.MaxSessions,
		},
		Base: modulehandler.NewBase(policy, logger),
	})
	composed, err := webapp.Compose(webapp.ComposeInput{Modules: mods})
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.HandleFunc("GET "+routepath.Root+"{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, routepath.Employees, http.StatusFound)
	})
	rootMux.Handle("GET "+routepath.Health, healthHandler(mods))
	rootMux.Handle("GET "+routepath.Metrics, metrics.Handler(registry))
	rootMux.Handle(routepath.Root, composed)

	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		logging.RequestLogger(logger),
		httpMetrics.Middleware(),
	), nil
}

// healthHandler reports ok when every module with a backing service is
// healthy, and degraded with 503 otherwise.
func healthHandler(mods []module.Module) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := healthResponse{Status: "ok", Modules: make(map[string]bool, len(mods))}
		status := http.StatusOK
		for _, m := range mods {
			healthy := true
			if reporter, ok := m.(module.HealthReporter); ok {
				healthy = reporter.Healthy()
			}
			resp.Modules[m.ID()] = healthy
			if !healthy {
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
			}
		}
		_ = httpx.WriteJSON(w, status, resp)
	})
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		logger: logger,
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	s.logger.Info("web server listening", zap.String("addr", s.httpAddr))
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
