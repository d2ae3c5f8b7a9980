package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/events"
	"github.com/MKhiriev/go-profile-editor/internal/handler"
	"github.com/MKhiriev/go-profile-editor/internal/handler/http"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/server"
	"github.com/MKhiriev/go-profile-editor/internal/service"
	"github.com/MKhiriev/go-profile-editor/internal/store"
	"github.com/MKhiriev/go-profile-editor/internal/workers"
	"github.com/MKhiriev/go-profile-editor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if buildVersion == "" {
		buildVersion = "dev"
	}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("profile-server")
	log.Info().Stringer("build", buildInfo).Msg("starting profile server")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("server", cfg.Server).Any("workers", cfg.Workers).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	publisher := events.NewPublisher(cfg.Events, log)
	defer publisher.Close()

	services, err := service.NewServices(storages, publisher, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	var httpOpts []http.Option
	if storages.PicturesHandler != nil {
		httpOpts = append(httpOpts, http.WithPictures(storages.PicturesPath, storages.PicturesHandler))
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log, httpOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if handlers.GRPC != nil {
		jobs := workers.NewWorkers(
			workers.NewHealthWorker(storages.UserRepository, handlers.GRPC, cfg.Workers.HealthInterval, log),
		)
		go jobs.Run(ctx)
	}

	srv.RunServer()
}
