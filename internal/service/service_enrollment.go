package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/internal/validators"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

const ticketCodePrefix = "TKT-"

// TicketCodeGenerator issues scannable ticket codes.
type TicketCodeGenerator interface {
	TicketCode(prefix string) string
}

type enrollmentService struct {
	users       store.UserRepository
	events      store.EventRepository
	enrollments store.EnrollmentRepository
	tickets     store.TicketLedger

	codes     TicketCodeGenerator
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewEnrollmentService(storages *store.ServerStorages, codes TicketCodeGenerator, validator validators.Validator, logger *logger.Logger) EnrollmentService {
	return &enrollmentService{
		users:       storages.Users,
		events:      storages.Events,
		enrollments: storages.Enrollments,
		tickets:     storages.Tickets,
		codes:       codes,
		validator:   validator,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *enrollmentService) ListByEvent(ctx context.Context, eventID string) ([]models.Participant, error) {
	if _, err := s.events.GetEvent(ctx, eventID); err != nil {
		return nil, fmt.Errorf("error getting event %s: %w", eventID, err)
	}

	participants, err := s.enrollments.ListEnrollmentsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments of event %s: %w", eventID, err)
	}
	return participants, nil
}

func (s *enrollmentService) ListByUser(ctx context.Context, userID string) ([]models.Participant, error) {
	participants, err := s.enrollments.ListEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments of user %s: %w", userID, err)
	}
	return participants, nil
}

// Enroll creates a pending enrollment and issues a valid ticket for it. A
// cancelled enrollment may be renewed; any other existing one is
// ErrAlreadyEnrolled.
func (s *enrollmentService) Enroll(ctx context.Context, req models.EnrollmentRequest) (models.EnrollmentResponse, error) {
	log := logger.FromContext(ctx)

	if req.Source == "" {
		req.Source = models.SourceWeb
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.EnrollmentResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	event, err := s.openEvent(ctx, req.EventID)
	if err != nil {
		return models.EnrollmentResponse{}, err
	}

	user, err := s.users.GetUser(ctx, req.UserID)
	if err != nil {
		return models.EnrollmentResponse{}, fmt.Errorf("error getting user %s: %w", req.UserID, err)
	}

	existing, err := s.enrollments.GetEnrollment(ctx, event.ID, user.ID)
	switch {
	case err == nil && existing.Status != models.EnrollmentCancelled:
		return models.EnrollmentResponse{}, ErrAlreadyEnrolled
	case err != nil && !errors.Is(err, store.ErrEnrollmentNotFound):
		return models.EnrollmentResponse{}, fmt.Errorf("error getting enrollment: %w", err)
	}

	createdAt := s.now()
	enrollment := models.Participant{
		UserID:    user.ID,
		EventID:   event.ID,
		Name:      user.Name,
		Email:     user.Email,
		Status:    models.EnrollmentPending,
		Source:    req.Source,
		CreatedAt: &createdAt,
	}
	if err = s.enrollments.SaveEnrollment(ctx, enrollment); err != nil {
		return models.EnrollmentResponse{}, fmt.Errorf("error saving enrollment: %w", err)
	}

	ticket := models.Ticket{
		Code:       s.codes.TicketCode(ticketCodePrefix),
		EventID:    event.ID,
		Status:     models.TicketValid,
		HolderName: user.Name,
	}
	if err = s.tickets.SaveTicket(ctx, ticket); err != nil {
		return models.EnrollmentResponse{}, fmt.Errorf("error saving ticket: %w", err)
	}

	log.Info().Str("event_id", event.ID).Str("user_id", user.ID).Str("ticket", ticket.Code).Msg("user enrolled")
	return models.EnrollmentResponse{
		Success:    true,
		TicketCode: ticket.Code,
		Enrollment: &enrollment,
	}, nil
}

func (s *enrollmentService) CheckIn(ctx context.Context, eventID, userID string, at time.Time) (models.Participant, error) {
	if _, err := s.openEvent(ctx, eventID); err != nil {
		return models.Participant{}, err
	}

	enrollment, err := s.enrollments.GetEnrollment(ctx, eventID, userID)
	if err != nil {
		return models.Participant{}, fmt.Errorf("error getting enrollment of user %s: %w", userID, err)
	}
	if enrollment.Status == models.EnrollmentCancelled {
		return models.Participant{}, fmt.Errorf("%w: enrollment is cancelled", ErrInvalidDataProvided)
	}
	if enrollment.Status == models.EnrollmentPresent {
		return enrollment, nil
	}

	markPresent(&enrollment, s.timeOrNow(at))
	if err = s.enrollments.SaveEnrollment(ctx, enrollment); err != nil {
		return models.Participant{}, fmt.Errorf("error saving enrollment: %w", err)
	}

	logger.FromContext(ctx).Info().Str("event_id", eventID).Str("user_id", userID).Msg("participant checked in")
	return enrollment, nil
}

// RegisterPresential rejects the whole batch when any registration is
// malformed, so a retried batch never half-applies on validation.
func (s *enrollmentService) RegisterPresential(ctx context.Context, eventID string, registrations []models.PendingRegistration) ([]models.Participant, error) {
	log := logger.FromContext(ctx)

	if _, err := s.openEvent(ctx, eventID); err != nil {
		return nil, err
	}

	for i := range registrations {
		registrations[i].Name = strings.TrimSpace(registrations[i].Name)
		registrations[i].Email = strings.TrimSpace(registrations[i].Email)
		if err := s.validator.Validate(ctx, registrations[i], validators.FieldName, validators.FieldEmail); err != nil {
			return nil, fmt.Errorf("%w: registration %d: %w", ErrInvalidDataProvided, i, err)
		}
	}

	participants := make([]models.Participant, 0, len(registrations))
	for _, r := range registrations {
		user, err := s.findOrCreateUser(ctx, r.Name, r.Email)
		if err != nil {
			return nil, err
		}

		enrollment, err := s.enrollments.GetEnrollment(ctx, eventID, user.ID)
		switch {
		case errors.Is(err, store.ErrEnrollmentNotFound):
			enrollment = models.Participant{
				UserID:  user.ID,
				EventID: eventID,
				Name:    user.Name,
				Email:   user.Email,
				Source:  models.SourcePresential,
			}
		case err != nil:
			return nil, fmt.Errorf("error getting enrollment of user %s: %w", user.ID, err)
		}

		if enrollment.Status != models.EnrollmentPresent {
			markPresent(&enrollment, s.timeOrNow(r.Timestamp))
			if err = s.enrollments.SaveEnrollment(ctx, enrollment); err != nil {
				return nil, fmt.Errorf("error saving enrollment: %w", err)
			}
		}
		participants = append(participants, enrollment)
	}

	log.Info().Str("event_id", eventID).Int("registrations", len(participants)).Msg("presential registrations applied")
	return participants, nil
}

func (s *enrollmentService) findOrCreateUser(ctx context.Context, name, email string) (models.User, error) {
	record, err := s.users.FindUserByEmail(ctx, email)
	if err == nil {
		return record.User, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("error finding user %s: %w", email, err)
	}

	user, err := s.users.CreateUser(ctx, store.UserRecord{
		User: models.User{Name: name, Email: email, Role: models.RoleClient},
	})
	if err != nil {
		return models.User{}, fmt.Errorf("error creating user %s: %w", email, err)
	}
	return user, nil
}

// openEvent returns the event unless it is unknown or already finished.
func (s *enrollmentService) openEvent(ctx context.Context, eventID string) (models.Event, error) {
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return models.Event{}, fmt.Errorf("error getting event %s: %w", eventID, err)
	}
	if event.Finished {
		return models.Event{}, ErrEventFinished
	}
	return event, nil
}

func (s *enrollmentService) timeOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return s.now()
	}
	return t
}

func markPresent(p *models.Participant, at time.Time) {
	p.Status = models.EnrollmentPresent
	p.CheckinTime = &at
	p.CheckedIn = true
}
