package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies every pending migration to the local SQLite database.
func Migrate(db *sql.DB, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}
	if log == nil {
		log = logger.Nop()
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Debug().Str("func", "migrations.Migrate").Msgf(format, v...)
}

// Fatalf is called by goose on unrecoverable errors. It logs instead of
// exiting; goose.Up still returns the error to the caller.
func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.log.Error().Str("func", "migrations.Migrate").Msgf(format, v...)
}
