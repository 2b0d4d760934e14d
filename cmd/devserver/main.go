package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/config"
	"github.com/MKhiriev/go-ticket-keeper/internal/handler"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/server"
	"github.com/MKhiriev/go-ticket-keeper/internal/service"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ticket-keeper-devserver")
	cfg, err := config.GetDevServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Version == "" {
		cfg.Version = buildVersion
	}

	log.Debug().Str("address", cfg.HTTPAddress).Str("issuer", cfg.TokenIssuer).Msg("received configs")

	storages := store.NewMemoryStorages(log)
	if err = service.SeedDevData(context.Background(), storages, time.Now()); err != nil {
		log.Fatal().Err(err).Msg("error seeding dev data")
	}

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
