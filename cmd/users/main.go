// Package main starts the users REST service process lifecycle.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	userscmd "github.com/louisbranch/staffbook/internal/cmd/users"
	"github.com/louisbranch/staffbook/internal/platform/config"
	"github.com/louisbranch/staffbook/internal/platform/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := userscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	logger, err := logging.New("users", cfg.Debug)
	if err != nil {
		config.Exitf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := userscmd.Run(ctx, cfg, logger); err != nil {
		logger.Fatal("failed to serve", zap.Error(err))
	}
}
