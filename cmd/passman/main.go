package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-console/internal/client"
	"github.com/MKhiriev/go-pass-console/internal/config"
	"github.com/MKhiriev/go-pass-console/internal/logger"
	"github.com/MKhiriev/go-pass-console/internal/service"
	"github.com/MKhiriev/go-pass-console/internal/store"
	"github.com/MKhiriev/go-pass-console/internal/tui"
	"github.com/MKhiriev/go-pass-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		fmt.Println(buildInfo)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("go-pass-console", cfg.Logger.File, cfg.Logger.Level)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting client")
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось открыть базу данных: %v\n", err)
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, log)

	ui, err := tui.New(services, cfg.UI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
