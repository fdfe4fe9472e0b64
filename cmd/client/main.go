package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-medi-vault/internal/client"
	"github.com/MKhiriev/go-medi-vault/internal/config"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const clientRole = "medi-vault-client"

func main() {
	// Wipe every locked buffer (session keys, pending passcodes) on
	// interrupt and on normal exit.
	memguard.CatchInterrupt()
	defer memguard.Purge()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger(clientRole).Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger(clientRole, cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	// store and service calls log through the context
	ctx = log.WithContext(ctx)

	app, err := client.NewApp(ctx, *cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Printf("medi-vault: %v\n", err)
		return
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Printf("medi-vault: %v\n", err)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
