// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/snapweb-login/internal/adapter"
	"github.com/MKhiriev/snapweb-login/internal/client"
	"github.com/MKhiriev/snapweb-login/internal/config"
	"github.com/MKhiriev/snapweb-login/internal/crypto"
	"github.com/MKhiriev/snapweb-login/internal/logger"
	"github.com/MKhiriev/snapweb-login/internal/service"
	"github.com/MKhiriev/snapweb-login/internal/store"
	"github.com/MKhiriev/snapweb-login/internal/tui"
	"github.com/MKhiriev/snapweb-login/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log := logger.NewClientLogger("snapweb-login-client", "")
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("snapweb-login-client", cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx := log.WithContext(context.Background())

	sealer, err := crypto.NewTokenSealer(cfg.App.HashKey)
	if err != nil {
		log.Fatal().Err(err).Msg("create token sealer")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, sealer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, storages.MacaroonRepository, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(storages, serverAdapter, buildInfo, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, serverAdapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			fmt.Fprintln(os.Stderr, "login cancelled")
			storages.Close()
			os.Exit(1)
		}
		log.Error().Err(err).Msg("client run error")
		storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
