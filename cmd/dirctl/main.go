// Package main runs the dirctl operator CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/staffbook/internal/cmd/dirctl"
	entrypoint "github.com/louisbranch/staffbook/internal/platform/cmd"
	"github.com/louisbranch/staffbook/internal/platform/config"
)

func main() {
	root, err := dirctl.NewRootCommand()
	if err != nil {
		config.Exitf("parse config: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDirctl, root.ExecuteContext)
	if err != nil {
		stop()
		config.Exitf("dirctl: %v", err)
	}
}
