package store

import (
	"database/sql"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/migrations"
)

// DB wraps a database handle together with the dialect-specific error
// classifier and the logger it was opened with.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	dialect            string
}

// Migrate applies the schema matching the dialect the handle was opened with.
func (db *DB) Migrate() error {
	if db.dialect == dialectPostgres {
		return migrations.MigrateServer(db.DB)
	}
	return migrations.MigrateClient(db.DB)
}

// IsRetryable reports whether err is a transient driver failure.
func (db *DB) IsRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
