package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/migrations"
	"github.com/MKhiriev/scene-keeper/models"
)

const (
	selectSceneSQL       = "SELECT scene_version, iv, ciphertext FROM scenes WHERE room = $1"
	selectSceneForUpdate = selectSceneSQL + " FOR UPDATE"
	insertSceneSQL       = "INSERT INTO scenes (room,scene_version,iv,ciphertext) VALUES ($1,$2,$3,$4)"
	updateSceneSQL       = "UPDATE scenes SET scene_version = $1, iv = $2, ciphertext = $3, updated_at = CURRENT_TIMESTAMP WHERE room = $4"
)

func newTestSQLStorage(t *testing.T) (*sqlStorage, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	l := logger.Nop()
	db := &DB{
		DB:                 conn,
		dialect:            migrations.DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             l,
	}
	return NewSQLStorage(db, time.Second, l).(*sqlStorage), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sceneRows(version int64, iv, ciphertext []byte) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"scene_version", "iv", "ciphertext"}).AddRow(version, iv, ciphertext)
}

func TestSQLStorage_GetScene(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectSceneSQL) + "$").
		WithArgs("room-1").
		WillReturnRows(sceneRows(5, []byte("iv"), []byte("ct")))

	env, err := s.GetScene(context.Background(), "room-1")
	require.NoError(t, err)
	assert.Equal(t, models.StoredSceneEnvelope{SceneVersion: 5, IV: []byte("iv"), Ciphertext: []byte("ct")}, env)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_GetScene_NotFound(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectSceneSQL)).
		WithArgs("room-1").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetScene(context.Background(), "room-1")
	assert.ErrorIs(t, err, ErrSceneNotFound)
}

func TestSQLStorage_GetScene_DBError(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectSceneSQL)).
		WithArgs("room-1").
		WillReturnError(errors.New("boom"))

	_, err := s.GetScene(context.Background(), "room-1")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrSceneNotFound)
}

func TestSQLStorage_WithinTx_Commit(t *testing.T) {
	s, mock := newTestSQLStorage(t)
	env := models.StoredSceneEnvelope{SceneVersion: 2, IV: []byte("iv"), Ciphertext: []byte("ct")}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectSceneForUpdate)).
		WithArgs("room-1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta(insertSceneSQL)).
		WithArgs("room-1", int64(2), []byte("iv"), []byte("ct")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.WithinTx(context.Background(), func(ctx context.Context, tx SceneTx) error {
		if _, err := tx.GetScene(ctx, "room-1"); !errors.Is(err, ErrSceneNotFound) {
			return err
		}
		return tx.InsertScene(ctx, "room-1", env)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_WithinTx_Update(t *testing.T) {
	s, mock := newTestSQLStorage(t)
	env := models.StoredSceneEnvelope{SceneVersion: 7, IV: []byte("iv2"), Ciphertext: []byte("ct2")}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectSceneForUpdate)).
		WithArgs("room-1").
		WillReturnRows(sceneRows(5, []byte("iv"), []byte("ct")))
	mock.ExpectExec(regexp.QuoteMeta(updateSceneSQL)).
		WithArgs(int64(7), []byte("iv2"), []byte("ct2"), "room-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.WithinTx(context.Background(), func(ctx context.Context, tx SceneTx) error {
		prev, err := tx.GetScene(ctx, "room-1")
		if err != nil {
			return err
		}
		assert.Equal(t, int64(5), prev.SceneVersion)
		return tx.UpdateScene(ctx, "room-1", env)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_WithinTx_FnErrorRollsBack(t *testing.T) {
	s, mock := newTestSQLStorage(t)
	fnErr := errors.New("reconcile failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := s.WithinTx(context.Background(), func(context.Context, SceneTx) error {
		return fnErr
	})
	assert.ErrorIs(t, err, ErrTransactionAborted)
	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_WithinTx_DuplicateInsert(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertSceneSQL)).
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	err := s.WithinTx(context.Background(), func(ctx context.Context, tx SceneTx) error {
		return tx.InsertScene(ctx, "room-1", models.StoredSceneEnvelope{})
	})
	assert.ErrorIs(t, err, ErrTransactionAborted)
	assert.ErrorIs(t, err, ErrSceneConflict)
}

func TestSQLStorage_WithinTx_UpdateMissingRow(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(updateSceneSQL)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.WithinTx(context.Background(), func(ctx context.Context, tx SceneTx) error {
		return tx.UpdateScene(ctx, "room-1", models.StoredSceneEnvelope{})
	})
	assert.ErrorIs(t, err, ErrSceneNotFound)
}

func TestSQLStorage_WithinTx_CommitFails(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(pgError(pgerrcode.SerializationFailure))

	err := s.WithinTx(context.Background(), func(context.Context, SceneTx) error { return nil })
	assert.ErrorIs(t, err, ErrTransactionAborted)
	assert.ErrorIs(t, err, ErrCommittingTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_WithinTx_BeginFails(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectBegin().WillReturnError(pgError(pgerrcode.CannotConnectNow))

	called := false
	err := s.WithinTx(context.Background(), func(context.Context, SceneTx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.False(t, called)
}

func TestSQLStorage_SaveFile(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO files (ref,data) VALUES ($1,$2) ON CONFLICT (ref)")).
		WithArgs("files/rooms/r/a", []byte("payload")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.SaveFile(context.Background(), "files/rooms/r/a", []byte("payload")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_SaveFile_Error(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectExec("INSERT INTO files").WillReturnError(errors.New("disk full"))

	err := s.SaveFile(context.Background(), "ref", []byte("payload"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLStorage_LoadFile(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT data FROM files WHERE ref = $1")).
		WithArgs("ref").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte("payload")))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT data FROM files WHERE ref = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	data, err := s.LoadFile(context.Background(), "ref")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	_, err = s.LoadFile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestDB_Dialects(t *testing.T) {
	pg := &DB{dialect: migrations.DialectPostgres, errorClassificator: NewPostgresErrorClassifier()}
	lite := &DB{dialect: migrations.DialectSQLite, errorClassificator: NewSQLiteErrorClassifier()}

	assert.True(t, pg.lockRows())
	assert.False(t, lite.lockRows())

	assert.True(t, pg.isDuplicateKey(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, pg.isDuplicateKey(pgError(pgerrcode.SerializationFailure)))

	assert.True(t, pg.retryable(pgError(pgerrcode.DeadlockDetected)))
	assert.False(t, pg.retryable(errors.New("plain")))
	assert.False(t, (&DB{}).retryable(pgError(pgerrcode.DeadlockDetected)))
}
