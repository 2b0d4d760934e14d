package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ticket-keeper/internal/config"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
)

// ClientStorages groups the local store repositories so the service layer
// receives them as one value.
type ClientStorages struct {
	Tickets       TicketRepository
	Validations   ValidationQueue
	Registrations RegistrationQueue
	Checkins      CheckinQueue
	Snapshots     SnapshotRepository
	Meta          SyncMetaRepository
	Sessions      SessionRepository

	db *DB
}

// NewClientStorages opens the SQLite database named by cfg.DB.DSN (creating
// the file when needed), applies migrations and wires every repository.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Tickets:       NewTicketRepository(db, logger),
		Validations:   NewValidationQueue(db, logger),
		Registrations: NewRegistrationQueue(db, logger),
		Checkins:      NewCheckinQueue(db, logger),
		Snapshots:     NewSnapshotRepository(db, logger),
		Meta:          NewSyncMetaRepository(db, logger),
		Sessions:      NewSessionRepository(db, logger),
		db:            db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
