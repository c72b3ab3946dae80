package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/models"
)

// nullStorage is selected when no store is configured. Reads find nothing
// and writes fail, so saving a scene reports a failure instead of silently
// dropping it.
type nullStorage struct {
	logger *logger.Logger
}

// NewNullStorage constructs the disabled [Storage].
func NewNullStorage(log *logger.Logger) Storage {
	log.Warn().Str("func", "NewNullStorage").Msg("no scene store configured, scenes will not be persisted")
	return &nullStorage{logger: log}
}

func (s *nullStorage) Backend() string {
	return string(BackendNull)
}

func (s *nullStorage) Close(context.Context) error {
	return nil
}

func (s *nullStorage) GetScene(context.Context, string) (models.StoredSceneEnvelope, error) {
	return models.StoredSceneEnvelope{}, ErrSceneNotFound
}

func (s *nullStorage) WithinTx(context.Context, func(ctx context.Context, tx SceneTx) error) error {
	return fmt.Errorf("%w: %w", ErrTransactionAborted, ErrStoreDisabled)
}

func (s *nullStorage) SaveFile(context.Context, string, []byte) error {
	return ErrStoreDisabled
}

func (s *nullStorage) LoadFile(context.Context, string) ([]byte, error) {
	return nil, ErrFileNotFound
}
