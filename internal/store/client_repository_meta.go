package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// syncMetaRepository is a key/value table of sync bookkeeping.
type syncMetaRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncMetaRepository(db *DB, logger *logger.Logger) SyncMetaRepository {
	return &syncMetaRepository{DB: db, logger: logger}
}

func (m *syncMetaRepository) SetLastSyncTime(ctx context.Context, at time.Time) error {
	return m.exec(ctx, "syncMetaRepository.SetLastSyncTime", upsertSyncMeta,
		lastSyncTimeKey, at.UTC().Format(time.RFC3339Nano),
	)
}

func (m *syncMetaRepository) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	log := logger.FromContext(ctx)

	var value string
	err := m.DB.QueryRowContext(ctx, getSyncMeta, lastSyncTimeKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		log.Err(err).Str("func", "syncMetaRepository.GetLastSyncTime").Msg("failed to read last sync time")
		return time.Time{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	at, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		log.Err(err).Str("func", "syncMetaRepository.GetLastSyncTime").Str("value", value).Msg("malformed last sync time")
		return time.Time{}, fmt.Errorf("malformed last sync time %q: %w", value, err)
	}

	return at, nil
}

// sessionRepository keeps at most one row: the device's current session.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{DB: db, logger: logger}
}

func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	return s.exec(ctx, "sessionRepository.SaveSession", upsertSession,
		session.UserID, session.Name, session.Email, session.Role, session.Token, toMillis(session.CreatedAt),
	)
}

func (s *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var (
		session   models.Session
		createdAt int64
	)

	err := s.DB.QueryRowContext(ctx, getCurrentSession).Scan(
		&session.UserID,
		&session.Name,
		&session.Email,
		&session.Role,
		&session.Token,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.GetSession").Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	session.CreatedAt = fromMillis(createdAt)

	return session, nil
}

func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	return s.exec(ctx, "sessionRepository.DeleteSession", deleteCurrentSession)
}
