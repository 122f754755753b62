package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/devfeed/internal/buildinfo"
	"github.com/dmitrijs2005/devfeed/internal/client/cli"
	"github.com/dmitrijs2005/devfeed/internal/client/config"
	"github.com/dmitrijs2005/devfeed/internal/logging"
	"github.com/dmitrijs2005/devfeed/internal/observability"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.Verbose)

	_, shutdown, err := observability.Init(ctx, observability.Settings{
		ServiceName: "devfeed-cli",
		Stdout:      cfg.Trace,
		Writer:      os.Stderr,
		Logger:      logger,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			logger.Warn(ctx, "trace shutdown failed", "error", err)
		}
	}()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "cli stopped", "error", err)
	}

}
