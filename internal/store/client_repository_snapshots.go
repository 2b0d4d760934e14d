package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// snapshotRepository stores each OfflineEvent as one row: the event and its
// participant list are JSON documents, so a save always replaces both.
type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{DB: db, logger: logger}
}

func (s *snapshotRepository) SaveEventSnapshot(ctx context.Context, snapshot models.OfflineEvent) error {
	log := logger.FromContext(ctx)

	if snapshot.Participants == nil {
		snapshot.Participants = []models.Participant{}
	}

	event, err := json.Marshal(snapshot.Event)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.SaveEventSnapshot").Str("event_id", snapshot.ID).Msg("failed to encode event")
		return fmt.Errorf("failed to encode event %s: %w", snapshot.ID, err)
	}
	participants, err := json.Marshal(snapshot.Participants)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.SaveEventSnapshot").Str("event_id", snapshot.ID).Msg("failed to encode participants")
		return fmt.Errorf("failed to encode participants of event %s: %w", snapshot.ID, err)
	}

	if err = s.exec(ctx, "snapshotRepository.SaveEventSnapshot", upsertOfflineEvent,
		snapshot.ID, string(event), string(participants), toMillis(snapshot.DownloadedAt),
	); err != nil {
		return fmt.Errorf("failed to save snapshot of event %s: %w", snapshot.ID, err)
	}

	log.Debug().
		Str("func", "snapshotRepository.SaveEventSnapshot").
		Str("event_id", snapshot.ID).
		Int("participants", len(snapshot.Participants)).
		Msg("snapshot saved")
	return nil
}

func (s *snapshotRepository) GetOfflineEvent(ctx context.Context, eventID string) (models.OfflineEvent, error) {
	row := s.DB.QueryRowContext(ctx, getOfflineEventByID, eventID)

	snapshot, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.OfflineEvent{}, ErrOfflineEventNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "snapshotRepository.GetOfflineEvent").
			Str("event_id", eventID).
			Msg("failed to read snapshot")
		return models.OfflineEvent{}, err
	}

	return snapshot, nil
}

func (s *snapshotRepository) GetAllOfflineEvents(ctx context.Context) ([]models.OfflineEvent, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getAllOfflineEvents)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.GetAllOfflineEvents").Msg("failed to query snapshots")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	snapshots := make([]models.OfflineEvent, 0)
	for rows.Next() {
		snapshot, scanErr := scanSnapshot(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "snapshotRepository.GetAllOfflineEvents").Msg("failed to read snapshot row")
			return nil, scanErr
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "snapshotRepository.GetAllOfflineEvents").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return snapshots, nil
}

func (s *snapshotRepository) DeleteOfflineEvent(ctx context.Context, eventID string) error {
	return s.exec(ctx, "snapshotRepository.DeleteOfflineEvent", deleteOfflineEventByID, eventID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (models.OfflineEvent, error) {
	var (
		snapshot     models.OfflineEvent
		event        string
		participants string
		downloadedAt int64
	)

	if err := row.Scan(&snapshot.ID, &event, &participants, &downloadedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OfflineEvent{}, err
		}
		return models.OfflineEvent{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal([]byte(event), &snapshot.Event); err != nil {
		return models.OfflineEvent{}, fmt.Errorf("%w: event %s: %w", ErrCorruptedSnapshot, snapshot.ID, err)
	}
	if err := json.Unmarshal([]byte(participants), &snapshot.Participants); err != nil {
		return models.OfflineEvent{}, fmt.Errorf("%w: participants of %s: %w", ErrCorruptedSnapshot, snapshot.ID, err)
	}
	snapshot.DownloadedAt = fromMillis(downloadedAt)

	return snapshot, nil
}
