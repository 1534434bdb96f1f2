// Package web parses web service flags and launches the directory UI.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/louisbranch/staffbook/internal/directory"
	entrypoint "github.com/louisbranch/staffbook/internal/platform/cmd"
	"github.com/louisbranch/staffbook/internal/services/web"
	"go.uber.org/zap"
)

// EnvPrefix namespaces web service environment variables.
const EnvPrefix = "STAFFBOOK_WEB_"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	UsersBaseURL        string        `env:"USERS_BASE_URL" envDefault:"http://localhost:3004"`
	CreateResponse      string        `env:"CREATE_RESPONSE" envDefault:"record"`
	FilterScope         string        `env:"FILTER_SCOPE" envDefault:"page"`
	SessionTTL          time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	MaxSessions         int           `env:"MAX_SESSIONS" envDefault:"256"`
	TrustForwardedProto bool          `env:"TRUST_FORWARDED_PROTO"`
	Debug               bool          `env:"DEBUG"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg, EnvPrefix); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.UsersBaseURL, "users-base-url", cfg.UsersBaseURL, "Users service base URL")
	fs.StringVar(&cfg.CreateResponse, "create-response", cfg.CreateResponse, "Expected POST /users response body: record or list")
	fs.StringVar(&cfg.FilterScope, "filter-scope", cfg.FilterScope, "Name filter scope: page or all")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Idle lifetime of a browser directory session")
	fs.IntVar(&cfg.MaxSessions, "max-sessions", cfg.MaxSessions, "Maximum live browser directory sessions")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto for secure cookies")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := directory.ParseCreateResponseMode(cfg.CreateResponse); err != nil {
		return Config{}, err
	}
	if _, err := directory.ParseFilterScope(cfg.FilterScope); err != nil {
		return Config{}, err
	}
	if cfg.MaxSessions <= 0 {
		return Config{}, fmt.Errorf("max sessions must be positive, got %d", cfg.MaxSessions)
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	mode, err := directory.ParseCreateResponseMode(cfg.CreateResponse)
	if err != nil {
		return err
	}
	scope, err := directory.ParseFilterScope(cfg.FilterScope)
	if err != nil {
		return err
	}
	options := entrypoint.RunOptions{Logger: logger}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, options, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			UsersBaseURL:        cfg.UsersBaseURL,
			CreateResponse:      mode,
			FilterScope:         scope,
			SessionTTL:          cfg.SessionTTL,
			MaxSessions:         cfg.MaxSessions,
			TrustForwardedProto: cfg.TrustForwardedProto,
		}, logger)
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()
		return server.ListenAndServe(ctx)
	})
}
