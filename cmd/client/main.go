package main

import (
	"os"

	"github.com/MKhiriev/go-profile-editor/internal/adapter"
	"github.com/MKhiriev/go-profile-editor/internal/client"
	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/editor"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/service"
	"github.com/MKhiriev/go-profile-editor/internal/session"
	"github.com/MKhiriev/go-profile-editor/internal/tui"
	"github.com/MKhiriev/go-profile-editor/models"
)

// Set with -ldflags "-X main.buildVersion=...". Empty values show as N/A on
// the editor's ABOUT page.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("profile-editor")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("editor config")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	identity, err := session.NewProvider(cfg.Session)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve session identity")
	}

	services := service.NewClientServices(serverAdapter, log)
	profileEditor := editor.New(services.ProfileService, identity, log)
	ui := tui.New(profileEditor, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(ui, services.ProfileService, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init editor")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("editor stopped with error")
	}
}
