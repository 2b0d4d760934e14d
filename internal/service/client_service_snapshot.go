package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/adapter"
	"github.com/MKhiriev/go-ticket-keeper/internal/app"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// clientSnapshotService downloads events with their participant lists for
// offline use. Each snapshot is replaced wholesale.
type clientSnapshotService struct {
	localStore   *store.ClientStorages
	adapter      adapter.ServerAdapter
	connectivity ConnectivityStatus
	gate         *syncGate

	now    func() time.Time
	logger *logger.Logger
}

func NewClientSnapshotService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, status ConnectivityStatus, logger *logger.Logger) ClientSnapshotService {
	return newClientSnapshotService(localStore, serverAdapter, status, newSyncGate(), logger)
}

func newClientSnapshotService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, status ConnectivityStatus, gate *syncGate, logger *logger.Logger) *clientSnapshotService {
	return &clientSnapshotService{
		localStore:   localStore,
		adapter:      serverAdapter,
		connectivity: status,
		gate:         gate,
		now:          time.Now,
		logger:       logger,
	}
}

// DownloadAllData fetches the event list, then each event's enrollments one
// event at a time. A failed enrollment fetch is recorded for that event and
// the loop moves on. Malformed rows are recorded too, but the rest of the
// event is still saved. A failed event list or a local write failure ends
// the download with Success=false.
func (s *clientSnapshotService) DownloadAllData(ctx context.Context) (models.DownloadResult, error) {
	if !s.connectivity.IsOnline() {
		return models.DownloadResult{Message: app.MsgOffline}, ErrOffline
	}

	if !s.gate.tryAcquire() {
		return models.DownloadResult{Message: app.MsgSyncInProgress}, ErrSyncInProgress
	}
	defer s.gate.release()

	events, err := s.adapter.ListEvents(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSnapshotService.DownloadAllData").Msg("failed to list events")
		return models.DownloadResult{Message: app.MsgDownloadFailed}, mapAdapterError(err)
	}

	var result models.DownloadResult
	for _, event := range events {
		participants, err := s.adapter.GetEventEnrollments(ctx, event.ID)
		if err != nil {
			result.Errors = append(result.Errors, itemError(models.CategoryEvent, event.ID, err))
			if !errors.Is(err, adapter.ErrPartialResponse) {
				s.logger.Warn().Err(err).
					Str("func", "clientSnapshotService.DownloadAllData").
					Str("event_id", event.ID).
					Msg("failed to fetch enrollments")
				continue
			}
		}

		snapshot := models.OfflineEvent{
			ID:           event.ID,
			Event:        event,
			Participants: deriveCheckedIn(participants),
			DownloadedAt: s.now(),
		}
		if err := s.localStore.Snapshots.SaveEventSnapshot(ctx, snapshot); err != nil {
			s.logger.Err(err).
				Str("func", "clientSnapshotService.DownloadAllData").
				Str("event_id", event.ID).
				Msg("failed to save snapshot")
			result.Success = false
			result.Message = app.MsgDownloadStorageFailure
			return result, storageFailure("save snapshot", err)
		}

		result.Events++
		result.Participants += len(participants)
	}

	result.Success = true
	result.Message = app.MsgDownloadCompleted
	if len(result.Errors) > 0 {
		result.Message = app.MsgDownloadCompletedWithErrs
	}

	s.logger.Info().
		Str("func", "clientSnapshotService.DownloadAllData").
		Int("events", result.Events).
		Int("participants", result.Participants).
		Int("errors", len(result.Errors)).
		Msg("download finished")

	return result, nil
}

func (s *clientSnapshotService) GetOfflineEvent(ctx context.Context, eventID string) (models.OfflineEvent, error) {
	snapshot, err := s.localStore.Snapshots.GetOfflineEvent(ctx, eventID)
	if err != nil {
		return models.OfflineEvent{}, wrapLookupError("get offline event", err, store.ErrOfflineEventNotFound)
	}
	return snapshot, nil
}

func (s *clientSnapshotService) GetAllOfflineEvents(ctx context.Context) ([]models.OfflineEvent, error) {
	snapshots, err := s.localStore.Snapshots.GetAllOfflineEvents(ctx)
	if err != nil {
		return nil, storageFailure("list offline events", err)
	}
	return snapshots, nil
}

func (s *clientSnapshotService) DeleteOfflineEvent(ctx context.Context, eventID string) error {
	if err := s.localStore.Snapshots.DeleteOfflineEvent(ctx, eventID); err != nil {
		return storageFailure("delete offline event", err)
	}
	return nil
}

func (s *clientSnapshotService) EventStats(ctx context.Context, eventID string) (models.EventStats, error) {
	snapshot, err := s.GetOfflineEvent(ctx, eventID)
	if err != nil {
		return models.EventStats{}, err
	}

	stats := models.EventStats{
		EventID:               snapshot.ID,
		CertificatesGenerated: snapshot.Event.Finished,
		DownloadedAt:          snapshot.DownloadedAt,
	}
	for _, p := range snapshot.Participants {
		if p.Status != models.EnrollmentCancelled {
			stats.TotalParticipants++
		}
		if p.Status == models.EnrollmentPresent {
			stats.CheckedIn++
		}
	}

	return stats, nil
}

// deriveCheckedIn sets CheckedIn from the presence of a check-in time.
func deriveCheckedIn(participants []models.Participant) []models.Participant {
	out := make([]models.Participant, len(participants))
	for i, p := range participants {
		p.CheckedIn = p.CheckinTime != nil
		out[i] = p
	}
	return out
}

// wrapLookupError passes notFound through unchanged and marks anything else
// as a storage failure.
func wrapLookupError(op string, err, notFound error) error {
	if errors.Is(err, notFound) {
		return err
	}
	return storageFailure(op, err)
}
