package main

import (
	"context"
	"fmt"

	"github.com/vidora/accounts/internal/config"
	"github.com/vidora/accounts/internal/handler"
	"github.com/vidora/accounts/internal/logger"
	"github.com/vidora/accounts/internal/media"
	"github.com/vidora/accounts/internal/server"
	"github.com/vidora/accounts/internal/service"
	"github.com/vidora/accounts/internal/store"
	"github.com/vidora/accounts/internal/workers"
	"github.com/vidora/accounts/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("accounts-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	uploader, err := media.NewHTTPUploader(cfg.Media, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating media uploader")
	}

	services := service.NewServices(repositories, uploader, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(ctx, cfg, log).Run()

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
