package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/scene-keeper/models"
)

const (
	scenesTable = "scenes"
	filesTable  = "files"
)

func buildSelectSceneQuery(b sq.StatementBuilderType, roomID string, forUpdate bool) (string, []any, error) {
	query := b.Select("scene_version", "iv", "ciphertext").
		From(scenesTable).
		Where(sq.Eq{"room": roomID})

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	return query.ToSql()
}

func buildInsertSceneQuery(b sq.StatementBuilderType, roomID string, envelope models.StoredSceneEnvelope) (string, []any, error) {
	return b.Insert(scenesTable).
		Columns("room", "scene_version", "iv", "ciphertext").
		Values(roomID, envelope.SceneVersion, envelope.IV, envelope.Ciphertext).
		ToSql()
}

func buildUpdateSceneQuery(b sq.StatementBuilderType, roomID string, envelope models.StoredSceneEnvelope) (string, []any, error) {
	return b.Update(scenesTable).
		Set("scene_version", envelope.SceneVersion).
		Set("iv", envelope.IV).
		Set("ciphertext", envelope.Ciphertext).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"room": roomID}).
		ToSql()
}

// buildUpsertFileQuery overwrites an existing payload. ON CONFLICT ... DO
// UPDATE is understood by both PostgreSQL and SQLite.
func buildUpsertFileQuery(b sq.StatementBuilderType, ref string, data []byte) (string, []any, error) {
	return b.Insert(filesTable).
		Columns("ref", "data").
		Values(ref, data).
		Suffix("ON CONFLICT (ref) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildSelectFileQuery(b sq.StatementBuilderType, ref string) (string, []any, error) {
	return b.Select("data").
		From(filesTable).
		Where(sq.Eq{"ref": ref}).
		ToSql()
}
