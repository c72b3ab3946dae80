package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/scene-keeper/internal/adapter"
	"github.com/MKhiriev/scene-keeper/internal/client"
	"github.com/MKhiriev/scene-keeper/internal/config"
	"github.com/MKhiriev/scene-keeper/internal/logger"
)

func main() {
	log := logger.NewCLILogger("scenectl", os.Getenv("LOG_LEVEL"))

	// command flags belong to the subcommands, so only env and the JSON file
	// configure the client
	cfg, err := config.GetStructuredConfig(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	sceneAdapter, err := adapter.NewHTTPSceneAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create scene adapter")
	}

	app, err := client.NewApp(sceneAdapter, cfg.App, os.Stdin, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
