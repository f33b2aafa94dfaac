package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/migrations"
)

// DB wraps the sqlite connection shared by the local repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened connection. Used by tests with sqlmock.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// execError wraps a failed statement. Lock contention is additionally
// marked with ErrDatabaseBusy so callers can tell it from a bad statement.
func (db *DB) execError(err error) error {
	if db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrExecutingStatement, ErrDatabaseBusy, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
