package store

import (
	"context"

	"github.com/MKhiriev/scene-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SceneRepository persists one [models.StoredSceneEnvelope] per room.
type SceneRepository interface {
	// GetScene reads the envelope of roomID outside a transaction. It
	// returns [ErrSceneNotFound] when the room has none.
	GetScene(ctx context.Context, roomID string) (models.StoredSceneEnvelope, error)

	// WithinTx runs fn inside a transaction and commits when fn returns nil.
	// Any error from fn, a deadline, or a failed commit aborts the
	// transaction and is returned wrapped in [ErrTransactionAborted]. The
	// commit must complete within the configured commit budget. The
	// underlying session is released on every path.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx SceneTx) error) error
}

// SceneTx is the view of the scene collection inside a transaction.
type SceneTx interface {
	// GetScene reads the envelope of roomID; [ErrSceneNotFound] when absent.
	GetScene(ctx context.Context, roomID string) (models.StoredSceneEnvelope, error)

	// InsertScene creates the first envelope of roomID. It returns
	// [ErrSceneConflict] when one already exists.
	InsertScene(ctx context.Context, roomID string, envelope models.StoredSceneEnvelope) error

	// UpdateScene replaces the envelope of roomID; [ErrSceneNotFound] when
	// absent.
	UpdateScene(ctx context.Context, roomID string, envelope models.StoredSceneEnvelope) error
}

// FileRepository stores opaque attachment payloads by reference
// ("prefix/id"). Writes overwrite; nothing is versioned.
type FileRepository interface {
	SaveFile(ctx context.Context, ref string, data []byte) error

	// LoadFile returns [ErrFileNotFound] when nothing is stored under ref.
	LoadFile(ctx context.Context, ref string) ([]byte, error)
}

// Storage is a connected scene store backend.
type Storage interface {
	SceneRepository
	FileRepository

	// Backend names the implementation, e.g. "mongodb" or "null".
	Backend() string

	// Close releases the connection.
	Close(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Provider hands out the connected [Storage]. [Connector] is the production
// implementation.
type Provider interface {
	Connect(ctx context.Context) (Storage, error)
}
