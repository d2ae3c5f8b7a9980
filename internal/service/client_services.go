package service

import (
	"github.com/MKhiriev/go-profile-editor/internal/adapter"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
)

type ClientServices struct {
	ProfileService ClientProfileService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ProfileService: NewClientProfileService(serverAdapter, logger),
	}
}
