package service

import (
	"github.com/MKhiriev/scene-keeper/internal/cache"
	"github.com/MKhiriev/scene-keeper/internal/codec"
	"github.com/MKhiriev/scene-keeper/internal/config"
	"github.com/MKhiriev/scene-keeper/internal/crypto"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/scene"
	"github.com/MKhiriev/scene-keeper/internal/store"
)

type Services struct {
	SceneService   SceneService
	FileService    FileService
	AppInfoService AppInfoService

	// VersionCache is shared with the cache sweeper.
	VersionCache *cache.VersionCache
}

// NewServices wires the default collaborators: AES-GCM, version sum,
// last-writer-wins reconciliation and basic restoration.
func NewServices(connector *store.Connector, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	cipher := crypto.NewCipher()
	versioner := scene.VersionSum{}
	versionCache := cache.NewVersionCache(versioner, cfg.Cache.TTL, cfg.Cache.MaxEntries)

	sceneService := NewSceneService(
		connector,
		codec.NewSceneCodec(cipher, versioner),
		scene.LastWriterWins{},
		scene.BasicRestorer{},
		versionCache,
		logger,
	)

	appInfo, err := NewAppInfoService(cfg.App, string(connector.Settings().Backend), logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SceneService:   NewSceneValidationService().Wrap(sceneService),
		FileService:    NewFileService(connector, codec.NewBlobCodec(cipher), logger),
		AppInfoService: appInfo,
		VersionCache:   versionCache,
	}, nil
}
