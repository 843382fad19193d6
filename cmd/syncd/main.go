package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-clinic-sync/internal/app"
	"github.com/MKhiriev/go-clinic-sync/internal/config"
	"github.com/MKhiriev/go-clinic-sync/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetDaemonConfig()
	if err != nil {
		logger.NewLogger("syncd").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("syncd")
	if cfg.App.LogFile != "" {
		log = logger.NewFileLogger("syncd", cfg.App.LogFile)
	}
	logger.SetLevel(cfg.App.LogLevel)

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	daemon, err := app.New(ctx, *cfg, app.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error assembling sync daemon")
	}

	runErr := daemon.Run(ctx)
	if err = daemon.Close(); err != nil {
		log.Error().Err(err).Msg("error closing backends")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("sync daemon run error")
	}
}

func printBuildInfo() {
	version, date, commit := buildVersion, buildDate, buildCommit
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}

	fmt.Printf("Build version: %s\n", version)
	fmt.Printf("Build date: %s\n", date)
	fmt.Printf("Build commit: %s\n", commit)
}
