package service

import (
	"context"

	"github.com/MKhiriev/scene-keeper/internal/cache"
	"github.com/MKhiriev/scene-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SceneService persists the shared scene of a room.
type SceneService interface {
	// Save runs the load-reconcile-store protocol for room. It returns a
	// NotModified result without touching the store when there is no room
	// context or connID already saved this exact scene. Any failure aborts
	// the transaction and is returned wrapped in [ErrSaveFailed].
	Save(ctx context.Context, room models.RoomIdentity, connID models.ConnectionID, elements models.Elements, mctx models.MergeContext) (models.SaveResult, error)

	// Load reads and decrypts the scene of room. An absent room yields nil
	// elements and a nil error. A non-empty connID is seeded into the
	// version cache.
	Load(ctx context.Context, room models.RoomIdentity, connID models.ConnectionID) (models.Elements, error)

	// IsSaved reports whether elements are already persisted for the
	// portal's connection.
	IsSaved(portal cache.Portal, elements models.Elements) bool

	// ForgetConnection drops the cached version of a closed connection.
	ForgetConnection(connID models.ConnectionID)
}

// FileService stores binary attachments in best-effort batches. Batches
// never fail as a whole: every id ends up in exactly one result set.
type FileService interface {
	SaveFiles(ctx context.Context, prefix string, files []models.FileUpload) models.FileSaveResult
	LoadFiles(ctx context.Context, prefix, key string, ids []models.FileID) models.FileLoadResult
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetStoreBackend(ctx context.Context) string
}
