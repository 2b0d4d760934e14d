package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/migrations"
)

// DB wraps the local SQLite connection.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.logger)
}

// writeRetries bounds how often a write is reattempted after a retryable
// SQLite error such as SQLITE_BUSY from a second process on the same file.
const (
	writeRetries    = 3
	writeRetryDelay = 50 * time.Millisecond
)

// withRetry runs op and repeats it while the classifier reports a retryable
// error. The last error is returned unchanged.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 0; attempt < writeRetries; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(writeRetryDelay * time.Duration(attempt+1)):
		}
	}

	return err
}
