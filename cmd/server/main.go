package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/scene-keeper/internal/config"
	"github.com/MKhiriev/scene-keeper/internal/handler"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/server"
	"github.com/MKhiriev/scene-keeper/internal/service"
	"github.com/MKhiriev/scene-keeper/internal/store"
	"github.com/MKhiriev/scene-keeper/internal/workers"
	"github.com/MKhiriev/scene-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const closeTimeout = 10 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	_ = buildInfo.Print(os.Stdout)

	log := logger.NewLogger("scene-server", os.Getenv("LOG_LEVEL"))
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	connector := store.NewConnector(cfg.Storage, log)
	log.Info().Str("store", string(connector.Settings().Backend)).Msg("store configured")

	services, err := service.NewServices(connector, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go workers.NewWorkers(services, cfg.Workers, log).Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err = connector.Close(closeCtx); err != nil {
		log.Err(err).Msg("error closing store")
	}
	log.Info().Msg("server stopped")
}
