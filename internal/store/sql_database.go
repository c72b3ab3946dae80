package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/migrations"
)

// DB is a relational connection together with its dialect.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema of the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the placeholder style
// of the dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// lockRows reports whether reads inside a transaction take row locks.
// SQLite serializes writers at the database level instead.
func (db *DB) lockRows() bool {
	return db.dialect == migrations.DialectPostgres
}

// isDuplicateKey reports whether err is a primary key or unique violation.
func (db *DB) isDuplicateKey(err error) bool {
	return db.classify(err) == Duplicate
}

// retryable reports whether err is classified as transient.
func (db *DB) retryable(err error) bool {
	return db.classify(err) == Retryable
}

func (db *DB) classify(err error) ErrorClassification {
	if err == nil || db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
