// Package main starts the browser-facing employee directory.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/louisbranch/staffbook/internal/cmd/web"
	"github.com/louisbranch/staffbook/internal/platform/config"
	"github.com/louisbranch/staffbook/internal/platform/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	logger, err := logging.New("web", cfg.Debug)
	if err != nil {
		config.Exitf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg, logger); err != nil {
		logger.Fatal("failed to serve", zap.Error(err))
	}
}
