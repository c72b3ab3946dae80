package service

import (
	"context"

	"github.com/MKhiriev/scene-keeper/internal/config"
	"github.com/MKhiriev/scene-keeper/internal/logger"
)

type appInfoService struct {
	appVersion   string
	storeBackend string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, storeBackend string, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:   cfg.Version,
		storeBackend: storeBackend,
		logger:       logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetStoreBackend returns the configured backend name, e.g. "mongodb". It
// does not dial the store.
func (s *appInfoService) GetStoreBackend(ctx context.Context) string {
	return s.storeBackend
}
