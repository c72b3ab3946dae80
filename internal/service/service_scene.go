// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/scene-keeper/internal/cache"
	"github.com/MKhiriev/scene-keeper/internal/codec"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/scene"
	"github.com/MKhiriev/scene-keeper/internal/store"
	"github.com/MKhiriev/scene-keeper/models"
)

// sceneService is the Scene Synchronizer: a read-modify-write of the room's
// envelope inside one store transaction.
//
// It takes no in-process locks. Concurrent writers to the same room, in
// this process or another, are serialized by the store's transaction
// isolation; the transaction re-reads the envelope before every write.
type sceneService struct {
	store      store.Provider
	codec      *codec.SceneCodec
	reconciler scene.Reconciler
	restorer   scene.Restorer
	cache      *cache.VersionCache

	logger *logger.Logger
}

func NewSceneService(
	provider store.Provider,
	sceneCodec *codec.SceneCodec,
	reconciler scene.Reconciler,
	restorer scene.Restorer,
	versionCache *cache.VersionCache,
	logger *logger.Logger,
) SceneService {
	return &sceneService{
		store:      provider,
		codec:      sceneCodec,
		reconciler: reconciler,
		restorer:   restorer,
		cache:      versionCache,
		logger:     logger,
	}
}

func (s *sceneService) Save(
	ctx context.Context,
	room models.RoomIdentity,
	connID models.ConnectionID,
	elements models.Elements,
	mctx models.MergeContext,
) (models.SaveResult, error) {
	notModified := models.SaveResult{Status: models.SaveStatusNotModified}
	if !room.IsComplete() || connID == "" {
		return notModified, nil
	}
	if s.cache.IsSaved(cache.NewPortal(room, connID), elements) {
		return notModified, nil
	}

	log := logger.FromContext(ctx).WithRoom(room.RoomID)

	storage, err := s.store.Connect(ctx)
	if err != nil {
		log.Err(err).Str("func", "sceneService.Save").Msg("store is unavailable")
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	var result models.SaveResult

	// an abandoned caller only discards the result: the transaction runs
	// to completion or to its commit deadline
	txCtx := log.WithContext(context.WithoutCancel(ctx))

	err = storage.WithinTx(txCtx, func(ctx context.Context, tx store.SceneTx) error {
		result = models.SaveResult{}

		prev, err := tx.GetScene(ctx, room.RoomID)
		if errors.Is(err, store.ErrSceneNotFound) {
			envelope, err := s.codec.Encode(elements, room.RoomKey)
			if err != nil {
				return err
			}
			if err = tx.InsertScene(ctx, room.RoomID, envelope); err != nil {
				return err
			}
			result = models.SaveResult{Status: models.SaveStatusSaved, SceneVersion: envelope.SceneVersion}
			return nil
		}
		if err != nil {
			return err
		}

		prevElements, err := s.codec.Decode(prev, room.RoomKey)
		if err != nil {
			return err
		}

		reconciled := s.reconciler.Reconcile(elements, prevElements, mctx)

		envelope, err := s.codec.Encode(reconciled, room.RoomKey)
		if err != nil {
			return err
		}
		if err = tx.UpdateScene(ctx, room.RoomID, envelope); err != nil {
			return err
		}

		if reconciled == nil {
			reconciled = models.Elements{}
		}
		result = models.SaveResult{
			Status:             models.SaveStatusSaved,
			SceneVersion:       envelope.SceneVersion,
			ReconciledElements: reconciled,
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "sceneService.Save").
			Str("connection_id", string(connID)).
			Msg("scene save aborted")
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	s.cache.Set(connID, room.RoomID, result.SceneVersion)

	log.Debug().
		Str("func", "sceneService.Save").
		Str("connection_id", string(connID)).
		Int64("scene_version", result.SceneVersion).
		Bool("reconciled", result.ReconciledElements != nil).
		Msg("scene saved")

	return result, nil
}

func (s *sceneService) Load(ctx context.Context, room models.RoomIdentity, connID models.ConnectionID) (models.Elements, error) {
	log := logger.FromContext(ctx).WithRoom(room.RoomID)

	storage, err := s.store.Connect(ctx)
	if err != nil {
		log.Err(err).Str("func", "sceneService.Load").Msg("store is unavailable")
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	envelope, err := storage.GetScene(ctx, room.RoomID)
	if errors.Is(err, store.ErrSceneNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	elements, err := s.codec.Decode(envelope, room.RoomKey)
	if err != nil {
		log.Err(err).Str("func", "sceneService.Load").Msg("failed to decode scene")
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	if connID != "" {
		s.cache.Set(connID, room.RoomID, s.codec.Version(elements))
	}

	return s.restorer.Restore(elements), nil
}

func (s *sceneService) IsSaved(portal cache.Portal, elements models.Elements) bool {
	return s.cache.IsSaved(portal, elements)
}

func (s *sceneService) ForgetConnection(connID models.ConnectionID) {
	s.cache.Forget(connID)
}
