package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/scene-keeper/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildSelectSceneQuery(t *testing.T) {
	query, args, err := buildSelectSceneQuery(dollar, "room-1", false)
	require.NoError(t, err)
	assert.Equal(t, "SELECT scene_version, iv, ciphertext FROM scenes WHERE room = $1", query)
	assert.Equal(t, []any{"room-1"}, args)

	query, _, err = buildSelectSceneQuery(dollar, "room-1", true)
	require.NoError(t, err)
	assert.Equal(t, "SELECT scene_version, iv, ciphertext FROM scenes WHERE room = $1 FOR UPDATE", query)

	query, _, err = buildSelectSceneQuery(question, "room-1", false)
	require.NoError(t, err)
	assert.Contains(t, query, "room = ?")
}

func Test_buildInsertSceneQuery(t *testing.T) {
	env := models.StoredSceneEnvelope{SceneVersion: 3, IV: []byte{1}, Ciphertext: []byte{2}}

	query, args, err := buildInsertSceneQuery(dollar, "room-1", env)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO scenes (room,scene_version,iv,ciphertext) VALUES ($1,$2,$3,$4)", query)
	assert.Equal(t, []any{"room-1", int64(3), []byte{1}, []byte{2}}, args)
}

func Test_buildUpdateSceneQuery(t *testing.T) {
	env := models.StoredSceneEnvelope{SceneVersion: 9, IV: []byte{1}, Ciphertext: []byte{2}}

	query, args, err := buildUpdateSceneQuery(dollar, "room-1", env)
	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE scenes SET scene_version = $1, iv = $2, ciphertext = $3, updated_at = CURRENT_TIMESTAMP WHERE room = $4",
		query)
	assert.Equal(t, []any{int64(9), []byte{1}, []byte{2}, "room-1"}, args)
}

func Test_buildUpsertFileQuery(t *testing.T) {
	query, args, err := buildUpsertFileQuery(question, "files/rooms/r/f1", []byte("x"))
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO files (ref,data) VALUES (?,?)")
	assert.Contains(t, query, "ON CONFLICT (ref) DO UPDATE SET data = excluded.data")
	assert.Equal(t, []any{"files/rooms/r/f1", []byte("x")}, args)
}

func Test_buildSelectFileQuery(t *testing.T) {
	query, args, err := buildSelectFileQuery(dollar, "ref")
	require.NoError(t, err)
	assert.Equal(t, "SELECT data FROM files WHERE ref = $1", query)
	assert.Equal(t, []any{"ref"}, args)
}
