package service

import (
	"context"

	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/models"
)

// versionInfo answers GET /api/version with a version resolved once at startup.
type versionInfo struct {
	version string
}

// NewAppInfoService resolves the reported version: APP_VERSION wins, then the
// linker stamp. A server with neither refuses to start.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, log *logger.Logger) (AppInfoService, error) {
	source := "config"
	version := cfg.Version
	if version == "" {
		source = "build"
		version = buildInfo.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Info().Str("version", version).Str("source", source).Str("build", buildInfo.String()).Msg("reporting server version")

	return &versionInfo{version: version}, nil
}

func (v *versionInfo) GetAppVersion(context.Context) string {
	return v.version
}
