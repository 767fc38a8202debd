package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-transactions/internal/adapter"
	"github.com/MKhiriev/go-transactions/internal/cloud"
	"github.com/MKhiriev/go-transactions/internal/config"
	"github.com/MKhiriev/go-transactions/internal/handler"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/server"
	"github.com/MKhiriev/go-transactions/internal/service"
	"github.com/MKhiriev/go-transactions/internal/store"
	"github.com/MKhiriev/go-transactions/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("transactions-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("auth_provider", cfg.Auth.Provider).
		Str("storage_driver", cfg.Storage.Driver).
		Str("version", cfg.App.Version).
		Msg("received configs")

	// the connector is only built when a component talks to Firebase
	var (
		conn            *cloud.FirebaseConnector
		firestoreClient store.FirestoreClientFunc
	)
	if cfg.UsesFirebase() {
		conn = cloud.NewFirebaseConnector(cfg.Firebase, log)
		firestoreClient = conn.Firestore
		defer func() {
			if err := conn.Close(); err != nil {
				log.Err(err).Msg("error closing firebase clients")
			}
		}()
	}

	verifier, err := adapter.NewTokenVerifier(cfg.Auth, conn, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token verifier")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, firestoreClient, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, verifier, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
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

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
