// Package users parses users service flags and launches the service.
package users

import (
	"context"
	"flag"

	"github.com/louisbranch/staffbook/internal/directory"
	entrypoint "github.com/louisbranch/staffbook/internal/platform/cmd"
	server "github.com/louisbranch/staffbook/internal/services/users/app"
	"go.uber.org/zap"
)

// EnvPrefix namespaces users service environment variables.
const EnvPrefix = "STAFFBOOK_USERS_"

// Config holds users command configuration.
type Config struct {
	HTTPAddr       string `env:"HTTP_ADDR" envDefault:"localhost:3004"`
	DBPath         string `env:"DB_PATH" envDefault:"data/users.db"`
	DatabaseURL    string `env:"DATABASE_URL"`
	SeedPath       string `env:"SEED_PATH"`
	CreateResponse string `env:"CREATE_RESPONSE" envDefault:"record"`
	Debug          bool   `env:"DEBUG"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg, EnvPrefix); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "Postgres DSN; overrides -db-path when set")
	fs.StringVar(&cfg.SeedPath, "seed", cfg.SeedPath, "YAML seed file applied to an empty store")
	fs.StringVar(&cfg.CreateResponse, "create-response", cfg.CreateResponse, "POST /users response body: record or list")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := directory.ParseCreateResponseMode(cfg.CreateResponse); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the users REST service.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	mode, err := directory.ParseCreateResponseMode(cfg.CreateResponse)
	if err != nil {
		return err
	}
	options := entrypoint.RunOptions{Logger: logger}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceUsers, options, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			HTTPAddr:       cfg.HTTPAddr,
			DBPath:         cfg.DBPath,
			DatabaseURL:    cfg.DatabaseURL,
			SeedPath:       cfg.SeedPath,
			CreateResponse: mode,
		}, logger)
	})
}
