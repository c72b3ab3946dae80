package store

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/scene-keeper/internal/config"
	"github.com/MKhiriev/scene-keeper/models"
)

// memoryStorage is an in-process [Storage] for tests and single-node
// development. Transactions are serialized and staged: writes become visible
// only when the commit succeeds. As with the SQL backends, commitTimeout
// bounds a transaction from its start to its commit.
type memoryStorage struct {
	commitTimeout time.Duration

	// txMu serializes transactions, mu guards the maps.
	txMu sync.Mutex
	mu   sync.RWMutex

	scenes map[string]models.StoredSceneEnvelope
	files  map[string][]byte
}

// NewMemoryStorage constructs an empty in-memory [Storage]. A non-positive
// commitTimeout selects [config.DefaultCommitTimeout].
func NewMemoryStorage(commitTimeout time.Duration) Storage {
	if commitTimeout <= 0 {
		commitTimeout = config.DefaultCommitTimeout
	}
	return &memoryStorage{
		commitTimeout: commitTimeout,
		scenes:        make(map[string]models.StoredSceneEnvelope),
		files:         make(map[string][]byte),
	}
}

func (s *memoryStorage) Backend() string {
	return string(BackendMemory)
}

func (s *memoryStorage) Close(context.Context) error {
	return nil
}

// GetScene implements [SceneRepository].
func (s *memoryStorage) GetScene(ctx context.Context, roomID string) (models.StoredSceneEnvelope, error) {
	if err := ctx.Err(); err != nil {
		return models.StoredSceneEnvelope{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	envelope, ok := s.scenes[roomID]
	if !ok {
		return models.StoredSceneEnvelope{}, ErrSceneNotFound
	}
	return cloneEnvelope(envelope), nil
}

// WithinTx implements [SceneRepository].
func (s *memoryStorage) WithinTx(ctx context.Context, fn func(ctx context.Context, tx SceneTx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrTransactionAborted, ErrBeginningTransaction, err)
	}

	txCtx, cancel := context.WithTimeout(ctx, s.commitTimeout)
	defer cancel()

	tx := &memorySceneTx{storage: s, staged: make(map[string]models.StoredSceneEnvelope)}
	if err := fn(txCtx, tx); err != nil {
		return fmt.Errorf("%w: %w", ErrTransactionAborted, err)
	}

	// a body that outlived the budget, or a cancelled caller, drops the
	// staged writes
	if err := txCtx.Err(); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrTransactionAborted, ErrCommittingTransaction, err)
	}

	s.mu.Lock()
	for roomID, envelope := range tx.staged {
		s.scenes[roomID] = envelope
	}
	s.mu.Unlock()

	return nil
}

// SaveFile implements [FileRepository].
func (s *memoryStorage) SaveFile(ctx context.Context, ref string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.files[ref] = bytes.Clone(data)
	s.mu.Unlock()
	return nil
}

// LoadFile implements [FileRepository].
func (s *memoryStorage) LoadFile(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.files[ref]
	if !ok {
		return nil, ErrFileNotFound
	}
	return bytes.Clone(data), nil
}

type memorySceneTx struct {
	storage *memoryStorage
	staged  map[string]models.StoredSceneEnvelope
}

func (t *memorySceneTx) lookup(roomID string) (models.StoredSceneEnvelope, bool) {
	if envelope, ok := t.staged[roomID]; ok {
		return envelope, true
	}

	t.storage.mu.RLock()
	defer t.storage.mu.RUnlock()
	envelope, ok := t.storage.scenes[roomID]
	return envelope, ok
}

func (t *memorySceneTx) GetScene(ctx context.Context, roomID string) (models.StoredSceneEnvelope, error) {
	if err := ctx.Err(); err != nil {
		return models.StoredSceneEnvelope{}, err
	}

	envelope, ok := t.lookup(roomID)
	if !ok {
		return models.StoredSceneEnvelope{}, ErrSceneNotFound
	}
	return cloneEnvelope(envelope), nil
}

func (t *memorySceneTx) InsertScene(ctx context.Context, roomID string, envelope models.StoredSceneEnvelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := t.lookup(roomID); ok {
		return ErrSceneConflict
	}
	t.staged[roomID] = cloneEnvelope(envelope)
	return nil
}

func (t *memorySceneTx) UpdateScene(ctx context.Context, roomID string, envelope models.StoredSceneEnvelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := t.lookup(roomID); !ok {
		return ErrSceneNotFound
	}
	t.staged[roomID] = cloneEnvelope(envelope)
	return nil
}

func cloneEnvelope(e models.StoredSceneEnvelope) models.StoredSceneEnvelope {
	return models.StoredSceneEnvelope{
		SceneVersion: e.SceneVersion,
		IV:           bytes.Clone(e.IV),
		Ciphertext:   bytes.Clone(e.Ciphertext),
	}
}
