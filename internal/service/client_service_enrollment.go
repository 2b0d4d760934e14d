package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ticket-keeper/internal/adapter"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/session"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/internal/validators"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

type clientEnrollmentService struct {
	localStore   *store.ClientStorages
	adapter      adapter.ServerAdapter
	connectivity ConnectivityStatus
	session      *session.Holder
	validator    validators.Validator

	logger *logger.Logger
}

func NewClientEnrollmentService(
	localStore *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	status ConnectivityStatus,
	holder *session.Holder,
	validator validators.Validator,
	logger *logger.Logger,
) ClientEnrollmentService {
	return &clientEnrollmentService{
		localStore:   localStore,
		adapter:      serverAdapter,
		connectivity: status,
		session:      holder,
		validator:    validator,
		logger:       logger,
	}
}

// ListEvents falls back to the downloaded snapshots when offline or when the
// remote call fails at the transport level.
func (e *clientEnrollmentService) ListEvents(ctx context.Context) ([]models.Event, error) {
	if e.connectivity.IsOnline() {
		events, err := e.adapter.ListEvents(ctx)
		if err == nil {
			return events, nil
		}
		if !errors.Is(err, adapter.ErrNetwork) {
			return nil, mapAdapterError(err)
		}
		e.logger.Warn().Err(err).Str("func", "clientEnrollmentService.ListEvents").Msg("falling back to offline events")
	}

	snapshots, err := e.localStore.Snapshots.GetAllOfflineEvents(ctx)
	if err != nil {
		return nil, storageFailure("list offline events", err)
	}

	events := make([]models.Event, 0, len(snapshots))
	for _, s := range snapshots {
		events = append(events, s.Event)
	}
	return events, nil
}

func (e *clientEnrollmentService) Enroll(ctx context.Context, eventID string) (models.EnrollmentResponse, error) {
	current, ok := e.session.Current()
	if !ok {
		return models.EnrollmentResponse{}, ErrNotSignedIn
	}

	req := models.EnrollmentRequest{
		UserID:  current.UserID,
		EventID: strings.TrimSpace(eventID),
		Source:  models.SourceWeb,
	}
	if err := e.validator.Validate(ctx, req); err != nil {
		return models.EnrollmentResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resp, err := e.adapter.Enroll(ctx, req)
	if err != nil {
		return models.EnrollmentResponse{}, mapAdapterError(err)
	}
	return resp, nil
}

func (e *clientEnrollmentService) MyEnrollments(ctx context.Context) ([]models.Participant, error) {
	enrollments, err := e.adapter.GetMyEnrollments(ctx)
	if errors.Is(err, adapter.ErrPartialResponse) {
		// dropped rows were logged by the adapter
		return enrollments, nil
	}
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return enrollments, nil
}
