package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// certificateHashLen is the length of the public verification code.
const certificateHashLen = 16

type eventService struct {
	events       store.EventRepository
	enrollments  store.EnrollmentRepository
	certificates store.CertificateRepository

	certificateKey string
	now            func() time.Time

	logger *logger.Logger
}

// NewEventService returns an EventService. certificateKey signs the
// certificate hashes issued by FinishEvent.
func NewEventService(storages *store.ServerStorages, certificateKey string, logger *logger.Logger) EventService {
	return &eventService{
		events:         storages.Events,
		enrollments:    storages.Enrollments,
		certificates:   storages.Certificates,
		certificateKey: certificateKey,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (models.Event, error) {
	if strings.TrimSpace(eventID) == "" {
		return models.Event{}, ErrInvalidDataProvided
	}

	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return models.Event{}, fmt.Errorf("error getting event %s: %w", eventID, err)
	}
	return event, nil
}

func (s *eventService) FinishEvent(ctx context.Context, eventID string) ([]models.Certificate, error) {
	log := logger.FromContext(ctx)

	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Finished {
		return nil, ErrEventFinished
	}

	participants, err := s.enrollments.ListEnrollmentsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments of event %s: %w", eventID, err)
	}

	issuedAt := s.now()
	certificates := make([]models.Certificate, 0, len(participants))
	for _, p := range participants {
		if p.Status != models.EnrollmentPresent {
			continue
		}

		cert := models.Certificate{
			EventID:  eventID,
			UserID:   p.UserID,
			Hash:     s.certificateHash(eventID, p.UserID),
			IssuedAt: issuedAt,
		}
		if err = s.certificates.SaveCertificate(ctx, cert); err != nil {
			return nil, fmt.Errorf("error saving certificate for user %s: %w", p.UserID, err)
		}
		certificates = append(certificates, cert)
	}

	event.Finished = true
	if err = s.events.SaveEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("error saving event %s: %w", eventID, err)
	}

	log.Info().Str("event_id", eventID).Int("certificates", len(certificates)).Msg("event finished")
	return certificates, nil
}

func (s *eventService) certificateHash(eventID, userID string) string {
	sum := utils.HashString(eventID+":"+userID, s.certificateKey)
	return strings.ToUpper(sum[:certificateHashLen])
}

