package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/netflex/internal/buildinfo"
	"github.com/dmitrijs2005/netflex/internal/client/cli"
	"github.com/dmitrijs2005/netflex/internal/client/config"
	"github.com/dmitrijs2005/netflex/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logging.NewTextLogger(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}

	log.Debug(ctx, "client started", "api", cfg.APIEndpoint, "db", cfg.DatabasePath)
	return app.Run(ctx)
}
