package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-profile-editor/internal/logger"
)

// versionProbeTimeout bounds the startup version request.
const versionProbeTimeout = 3 * time.Second

var errNoUI = errors.New("no user interface to run")

type App struct {
	ui       UI
	versions VersionChecker
	logger   *logger.Logger
}

func NewApp(ui UI, versions VersionChecker, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{ui: ui, versions: versions, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.probeServer(ctx)
	return a.ui.Run(ctx)
}

// probeServer logs the server version. An unreachable server is not fatal:
// the editor reports its own failures on screen.
func (a *App) probeServer(ctx context.Context) {
	if a.versions == nil {
		return
	}

	probeCtx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	version, err := a.versions.ServerVersion(probeCtx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.probeServer").Msg("server version is unavailable")
		return
	}
	a.logger.Info().Str("func", "*App.probeServer").Str("server_version", version).Msg("connected to server")
}
