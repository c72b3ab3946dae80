package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/scene-keeper/internal/codec"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/store"
	"github.com/MKhiriev/scene-keeper/models"
)

// defaultFileConcurrency bounds the fan-out of one batch.
const defaultFileConcurrency = 8

// fileService is the File Blob Store. Every id is handled independently:
// a failure is recorded in the Errored set and never affects its siblings.
type fileService struct {
	store       store.Provider
	blobs       *codec.BlobCodec
	concurrency int
	now         func() time.Time

	logger *logger.Logger
}

func NewFileService(provider store.Provider, blobs *codec.BlobCodec, logger *logger.Logger) FileService {
	return &fileService{
		store:       provider,
		blobs:       blobs,
		concurrency: defaultFileConcurrency,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *fileService) SaveFiles(ctx context.Context, prefix string, files []models.FileUpload) models.FileSaveResult {
	log := logger.FromContext(ctx)
	result := models.FileSaveResult{
		Saved:   models.FileIDSet{},
		Errored: models.FileIDSet{},
	}

	storage, err := s.store.Connect(ctx)
	if err != nil {
		log.Err(err).Str("func", "fileService.SaveFiles").Msg("store is unavailable")
		for _, f := range files {
			result.Errored.Add(f.ID)
		}
		return result
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, f := range files {
		g.Go(func() error {
			err := storage.SaveFile(gctx, fileRef(prefix, f.ID), f.Data)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Err(err).
					Str("func", "fileService.SaveFiles").
					Str("file_id", string(f.ID)).
					Msg("failed to save file")
				result.Errored.Add(f.ID)
				return nil
			}
			result.Saved.Add(f.ID)
			return nil
		})
	}
	_ = g.Wait()

	return result
}

func (s *fileService) LoadFiles(ctx context.Context, prefix, key string, ids []models.FileID) models.FileLoadResult {
	log := logger.FromContext(ctx)
	result := models.FileLoadResult{
		Loaded:  []models.FileRecord{},
		Errored: models.FileIDSet{},
	}

	unique := models.FileIDSet{}
	for _, id := range ids {
		unique.Add(id)
	}

	storage, err := s.store.Connect(ctx)
	if err != nil {
		log.Err(err).Str("func", "fileService.LoadFiles").Msg("store is unavailable")
		result.Errored = unique
		return result
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, id := range unique.Sorted() {
		g.Go(func() error {
			record, err := s.loadFile(gctx, storage, prefix, key, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if !errors.Is(err, store.ErrFileNotFound) {
					log.Err(err).
						Str("func", "fileService.LoadFiles").
						Str("file_id", string(id)).
						Msg("failed to load file")
				}
				result.Errored.Add(id)
				return nil
			}
			result.Loaded = append(result.Loaded, record)
			return nil
		})
	}
	_ = g.Wait()

	return result
}

func (s *fileService) loadFile(ctx context.Context, storage store.Storage, prefix, key string, id models.FileID) (models.FileRecord, error) {
	payload, err := storage.LoadFile(ctx, fileRef(prefix, id))
	if err != nil {
		return models.FileRecord{}, err
	}

	data, meta, err := s.blobs.Decompress(payload, key)
	if err != nil {
		return models.FileRecord{}, err
	}

	record := models.FileRecord{
		ID:       id,
		MimeType: meta.MimeType,
		DataURL:  string(data),
		Created:  meta.Created,
	}
	if record.MimeType == "" {
		record.MimeType = models.MimeTypeBinary
	}
	if record.Created == 0 {
		record.Created = s.now().UnixMilli()
	}
	return record, nil
}

func fileRef(prefix string, id models.FileID) string {
	return prefix + "/" + string(id)
}
