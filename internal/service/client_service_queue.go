package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/internal/validators"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

type clientQueueService struct {
	localStore *store.ClientStorages
	validator  validators.Validator

	now    func() time.Time
	logger *logger.Logger
}

func NewClientQueueService(localStore *store.ClientStorages, validator validators.Validator, logger *logger.Logger) ClientQueueService {
	return &clientQueueService{
		localStore: localStore,
		validator:  validator,
		now:        time.Now,
		logger:     logger,
	}
}

func (q *clientQueueService) EnqueueCheckin(ctx context.Context, checkin models.PendingCheckin) (models.PendingCheckin, error) {
	checkin.EventID = strings.TrimSpace(checkin.EventID)
	checkin.UserID = strings.TrimSpace(checkin.UserID)
	if checkin.CheckinTime.IsZero() {
		checkin.CheckinTime = q.now()
	}

	if err := q.validator.Validate(ctx, checkin); err != nil {
		return models.PendingCheckin{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	queued, err := q.localStore.Checkins.AddPendingCheckin(ctx, checkin)
	if err != nil {
		return models.PendingCheckin{}, storageFailure("enqueue checkin", err)
	}

	q.logger.Debug().
		Str("func", "clientQueueService.EnqueueCheckin").
		Int64("seq", queued.Seq).
		Str("event_id", queued.EventID).
		Str("user_id", queued.UserID).
		Msg("checkin queued")

	return queued, nil
}

func (q *clientQueueService) EnqueueRegistration(ctx context.Context, registration models.PendingRegistration) (models.PendingRegistration, error) {
	registration.Name = strings.TrimSpace(registration.Name)
	registration.Email = strings.TrimSpace(registration.Email)
	registration.EventID = strings.TrimSpace(registration.EventID)
	if registration.Timestamp.IsZero() {
		registration.Timestamp = q.now()
	}

	if err := q.validator.Validate(ctx, registration); err != nil {
		return models.PendingRegistration{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	queued, err := q.localStore.Registrations.AddPendingRegistration(ctx, registration)
	if err != nil {
		return models.PendingRegistration{}, storageFailure("enqueue registration", err)
	}

	q.logger.Debug().
		Str("func", "clientQueueService.EnqueueRegistration").
		Int64("seq", queued.Seq).
		Str("event_id", queued.EventID).
		Msg("registration queued")

	return queued, nil
}

func (q *clientQueueService) PendingCheckins(ctx context.Context) ([]models.PendingCheckin, error) {
	items, err := q.localStore.Checkins.GetPendingCheckins(ctx)
	if err != nil {
		return nil, storageFailure("read pending checkins", err)
	}
	return items, nil
}

func (q *clientQueueService) PendingRegistrations(ctx context.Context) ([]models.PendingRegistration, error) {
	items, err := q.localStore.Registrations.GetPendingRegistrations(ctx)
	if err != nil {
		return nil, storageFailure("read pending registrations", err)
	}
	return items, nil
}

func (q *clientQueueService) PendingValidations(ctx context.Context) ([]models.PendingValidation, error) {
	items, err := q.localStore.Validations.GetPendingValidations(ctx)
	if err != nil {
		return nil, storageFailure("read pending validations", err)
	}
	return items, nil
}

func (q *clientQueueService) PendingCounts(ctx context.Context) (models.PendingCounts, error) {
	var (
		counts models.PendingCounts
		err    error
	)

	if counts.Checkins, err = q.localStore.Checkins.CountPendingCheckins(ctx); err != nil {
		return models.PendingCounts{}, storageFailure("count pending checkins", err)
	}
	if counts.Registrations, err = q.localStore.Registrations.CountPendingRegistrations(ctx); err != nil {
		return models.PendingCounts{}, storageFailure("count pending registrations", err)
	}
	if counts.Validations, err = q.localStore.Validations.CountPendingValidations(ctx); err != nil {
		return models.PendingCounts{}, storageFailure("count pending validations", err)
	}

	return counts, nil
}
