package service

import (
	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/events"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/store"
	"github.com/MKhiriev/go-profile-editor/models"
)

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
}

// NewServices assembles the user service chain, outermost first:
// validation, events, cache, store.
func NewServices(storages *store.Storages, publisher events.Publisher, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserService(storages.UserRepository, storages.PictureStorage, logger)
	userService = wrapUserService(userService,
		NewUserValidationService(),
		NewUserEventsService(publisher),
		NewUserCacheService(storages.ProfileCache),
	)

	return &Services{
		UserService:    userService,
		AppInfoService: appInfo,
	}, nil
}

// wrapUserService applies wrappers so that the first one ends up outermost.
func wrapUserService(base UserService, wrappers ...UserServiceWrapper) UserService {
	for i := len(wrappers) - 1; i >= 0; i-- {
		base = wrappers[i].Wrap(base)
	}
	return base
}
