package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bookmark-sync/internal/client"
	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.GetClientConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("go-bookmark-client", cfg.LogPath)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Strs("command", cfg.Command).
		Msg("client started")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := client.NewRuntime(ctx, cfg, log)
	if err != nil {
		log.Err(err).Msg("init client runtime error")
		return err
	}
	defer func() {
		if closeErr := rt.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close client runtime")
		}
	}()

	app := client.NewApp(rt.Services, cfg.SyncInterval, os.Stdout, log)
	if err = app.Run(ctx, cfg.Command); err != nil {
		log.Err(err).Msg("client run error")
		return err
	}

	return nil
}
