package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// ── validations ───────────────────────────────────────────────────────────────

type validationQueue struct {
	*DB
	logger *logger.Logger
}

func NewValidationQueue(db *DB, logger *logger.Logger) ValidationQueue {
	return &validationQueue{DB: db, logger: logger}
}

func (q *validationQueue) AddPendingValidation(ctx context.Context, v models.PendingValidation) error {
	if err := q.exec(ctx, "validationQueue.AddPendingValidation", upsertPendingValidation,
		v.Code, toMillis(v.Timestamp), v.Status,
	); err != nil {
		return fmt.Errorf("failed to queue validation (code=%s): %w", v.Code, err)
	}

	return nil
}

func (q *validationQueue) GetPendingValidations(ctx context.Context) ([]models.PendingValidation, error) {
	log := logger.FromContext(ctx)

	rows, err := q.DB.QueryContext(ctx, getAllPendingValidations)
	if err != nil {
		log.Err(err).Str("func", "validationQueue.GetPendingValidations").Msg("failed to query pending validations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.PendingValidation
	for rows.Next() {
		var (
			item models.PendingValidation
			at   int64
		)
		if err = rows.Scan(&item.Code, &at, &item.Status); err != nil {
			log.Err(err).Str("func", "validationQueue.GetPendingValidations").Msg("failed to scan pending validation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		item.Timestamp = fromMillis(at)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "validationQueue.GetPendingValidations").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (q *validationQueue) ClearPendingValidations(ctx context.Context, validations []models.PendingValidation) error {
	if len(validations) == 0 {
		return nil
	}

	query, args, err := buildDeleteValidationsQuery(validations)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "validationQueue.ClearPendingValidations").
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return q.exec(ctx, "validationQueue.ClearPendingValidations", query, args...)
}

func (q *validationQueue) CountPendingValidations(ctx context.Context) (int, error) {
	return q.countRows(ctx, pendingValidationsTable, "validationQueue.CountPendingValidations")
}

// ── registrations ─────────────────────────────────────────────────────────────

type registrationQueue struct {
	*DB
	logger *logger.Logger
}

func NewRegistrationQueue(db *DB, logger *logger.Logger) RegistrationQueue {
	return &registrationQueue{DB: db, logger: logger}
}

func (q *registrationQueue) AddPendingRegistration(ctx context.Context, r models.PendingRegistration) (models.PendingRegistration, error) {
	seq, err := q.insert(ctx, "registrationQueue.AddPendingRegistration", insertPendingRegistration,
		r.Name, r.Email, r.EventID, toMillis(r.Timestamp),
	)
	if err != nil {
		return models.PendingRegistration{}, fmt.Errorf("failed to queue registration (event_id=%s): %w", r.EventID, err)
	}

	r.Seq = seq
	return r, nil
}

func (q *registrationQueue) GetPendingRegistrations(ctx context.Context) ([]models.PendingRegistration, error) {
	log := logger.FromContext(ctx)

	rows, err := q.DB.QueryContext(ctx, getAllPendingRegistrations)
	if err != nil {
		log.Err(err).Str("func", "registrationQueue.GetPendingRegistrations").Msg("failed to query pending registrations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.PendingRegistration
	for rows.Next() {
		var (
			item models.PendingRegistration
			at   int64
		)
		if err = rows.Scan(&item.Seq, &item.Name, &item.Email, &item.EventID, &at); err != nil {
			log.Err(err).Str("func", "registrationQueue.GetPendingRegistrations").Msg("failed to scan pending registration row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		item.Timestamp = fromMillis(at)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "registrationQueue.GetPendingRegistrations").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (q *registrationQueue) DeletePendingRegistrationsThrough(ctx context.Context, seq int64) error {
	return q.exec(ctx, "registrationQueue.DeletePendingRegistrationsThrough", deletePendingRegistrationsThrough, seq)
}

func (q *registrationQueue) CountPendingRegistrations(ctx context.Context) (int, error) {
	return q.countRows(ctx, pendingRegistrationsTable, "registrationQueue.CountPendingRegistrations")
}

// ── check-ins ─────────────────────────────────────────────────────────────────

type checkinQueue struct {
	*DB
	logger *logger.Logger
}

func NewCheckinQueue(db *DB, logger *logger.Logger) CheckinQueue {
	return &checkinQueue{DB: db, logger: logger}
}

func (q *checkinQueue) AddPendingCheckin(ctx context.Context, c models.PendingCheckin) (models.PendingCheckin, error) {
	seq, err := q.insert(ctx, "checkinQueue.AddPendingCheckin", insertPendingCheckin,
		c.EventID, c.UserID, toMillis(c.CheckinTime),
	)
	if err != nil {
		return models.PendingCheckin{}, fmt.Errorf("failed to queue check-in (event_id=%s, user_id=%s): %w", c.EventID, c.UserID, err)
	}

	c.Seq = seq
	return c, nil
}

func (q *checkinQueue) GetPendingCheckins(ctx context.Context) ([]models.PendingCheckin, error) {
	log := logger.FromContext(ctx)

	rows, err := q.DB.QueryContext(ctx, getAllPendingCheckins)
	if err != nil {
		log.Err(err).Str("func", "checkinQueue.GetPendingCheckins").Msg("failed to query pending check-ins")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.PendingCheckin
	for rows.Next() {
		var (
			item models.PendingCheckin
			at   int64
		)
		if err = rows.Scan(&item.Seq, &item.EventID, &item.UserID, &at); err != nil {
			log.Err(err).Str("func", "checkinQueue.GetPendingCheckins").Msg("failed to scan pending check-in row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		item.CheckinTime = fromMillis(at)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "checkinQueue.GetPendingCheckins").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (q *checkinQueue) DeletePendingCheckinsThrough(ctx context.Context, seq int64) error {
	return q.exec(ctx, "checkinQueue.DeletePendingCheckinsThrough", deletePendingCheckinsThrough, seq)
}

func (q *checkinQueue) CountPendingCheckins(ctx context.Context) (int, error) {
	return q.countRows(ctx, pendingCheckinsTable, "checkinQueue.CountPendingCheckins")
}
