package main

import (
	"fmt"

	"github.com/okhapkin/go-match-sync/internal/adapter"
	"github.com/okhapkin/go-match-sync/internal/client"
	"github.com/okhapkin/go-match-sync/internal/config"
	"github.com/okhapkin/go-match-sync/internal/logger"
	"github.com/okhapkin/go-match-sync/internal/service"
	"github.com/okhapkin/go-match-sync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("match-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	gateway, err := adapter.NewHTTPRemoteGateway(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote gateway")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, gateway)

	app, err := client.NewApp(services, gateway, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
