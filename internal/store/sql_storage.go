// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/models"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// sqlStorage is the relational implementation of [Storage], shared by the
// PostgreSQL and SQLite backends.
//
// Scene transactions run with the commit budget as their deadline: when it
// passes, database/sql rolls the transaction back and the commit fails.
type sqlStorage struct {
	db            *DB
	commitTimeout time.Duration
	logger        *logger.Logger
}

// NewSQLStorage constructs a [Storage] backed by db.
func NewSQLStorage(db *DB, commitTimeout time.Duration, logger *logger.Logger) Storage {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating sql scene storage")
	return &sqlStorage{
		db:            db,
		commitTimeout: commitTimeout,
		logger:        logger,
	}
}

func (s *sqlStorage) Backend() string {
	return string(s.db.dialect)
}

func (s *sqlStorage) Close(context.Context) error {
	return s.db.Close()
}

// GetScene implements [SceneRepository].
func (s *sqlStorage) GetScene(ctx context.Context, roomID string) (models.StoredSceneEnvelope, error) {
	return selectScene(ctx, s.db, s.db.DB, roomID, false)
}

// WithinTx implements [SceneRepository].
func (s *sqlStorage) WithinTx(ctx context.Context, fn func(ctx context.Context, tx SceneTx) error) error {
	log := logger.FromContext(ctx)

	txCtx, cancel := context.WithTimeout(ctx, s.commitTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "sqlStorage.WithinTx").
			Bool("retryable", s.db.retryable(err)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w: %w", ErrTransactionAborted, ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(txCtx, &sqlSceneTx{db: s.db, tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "sqlStorage.WithinTx").Msg("failed to roll back transaction")
		}
		return fmt.Errorf("%w: %w", ErrTransactionAborted, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "sqlStorage.WithinTx").
			Dur("commit_timeout", s.commitTimeout).
			Bool("retryable", s.db.retryable(err)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w: %w", ErrTransactionAborted, ErrCommittingTransaction, err)
	}

	return nil
}

// SaveFile implements [FileRepository].
func (s *sqlStorage) SaveFile(ctx context.Context, ref string, data []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertFileQuery(s.db.builder(), ref, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlStorage.SaveFile").
			Str("ref", ref).
			Msg("failed to save file")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// LoadFile implements [FileRepository].
func (s *sqlStorage) LoadFile(ctx context.Context, ref string) ([]byte, error) {
	query, args, err := buildSelectFileQuery(s.db.builder(), ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data []byte
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFileNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "sqlStorage.LoadFile").
			Str("ref", ref).
			Msg("failed to load file")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return data, nil
}

// sqlSceneTx implements [SceneTx] on an open *sql.Tx.
type sqlSceneTx struct {
	db *DB
	tx *sql.Tx
}

func (t *sqlSceneTx) GetScene(ctx context.Context, roomID string) (models.StoredSceneEnvelope, error) {
	return selectScene(ctx, t.db, t.tx, roomID, t.db.lockRows())
}

func (t *sqlSceneTx) InsertScene(ctx context.Context, roomID string, envelope models.StoredSceneEnvelope) error {
	query, args, err := buildInsertSceneQuery(t.db.builder(), roomID, envelope)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = t.tx.ExecContext(ctx, query, args...); err != nil {
		if t.db.isDuplicateKey(err) {
			return ErrSceneConflict
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "sqlSceneTx.InsertScene").
			Str("room_id", roomID).
			Msg("failed to insert scene")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (t *sqlSceneTx) UpdateScene(ctx context.Context, roomID string, envelope models.StoredSceneEnvelope) error {
	query, args, err := buildUpdateSceneQuery(t.db.builder(), roomID, envelope)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqlSceneTx.UpdateScene").
			Str("room_id", roomID).
			Msg("failed to update scene")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSceneNotFound
	}

	return nil
}

func selectScene(ctx context.Context, db *DB, q queryer, roomID string, forUpdate bool) (models.StoredSceneEnvelope, error) {
	query, args, err := buildSelectSceneQuery(db.builder(), roomID, forUpdate)
	if err != nil {
		return models.StoredSceneEnvelope{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var envelope models.StoredSceneEnvelope
	err = q.QueryRowContext(ctx, query, args...).Scan(&envelope.SceneVersion, &envelope.IV, &envelope.Ciphertext)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoredSceneEnvelope{}, ErrSceneNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "selectScene").
			Str("room_id", roomID).
			Msg("failed to read scene")
		return models.StoredSceneEnvelope{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return envelope, nil
}
