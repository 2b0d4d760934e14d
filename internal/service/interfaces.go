package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/models"
)

// Dev server services. They back the HTTP handlers of cmd/devserver.

type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type EventService interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, eventID string) (models.Event, error)
	// FinishEvent closes the event and issues a certificate to every
	// present participant. Finishing twice returns ErrEventFinished.
	FinishEvent(ctx context.Context, eventID string) ([]models.Certificate, error)
}

type EnrollmentService interface {
	ListByEvent(ctx context.Context, eventID string) ([]models.Participant, error)
	ListByUser(ctx context.Context, userID string) ([]models.Participant, error)
	Enroll(ctx context.Context, req models.EnrollmentRequest) (models.EnrollmentResponse, error)
	// CheckIn marks the enrollment present. Repeating it keeps the first
	// check-in time.
	CheckIn(ctx context.Context, eventID, userID string, at time.Time) (models.Participant, error)
	// RegisterPresential enrolls walk-ins as present, creating accounts for
	// unknown emails.
	RegisterPresential(ctx context.Context, eventID string, registrations []models.PendingRegistration) ([]models.Participant, error)
}

type TicketService interface {
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	// ApplyValidations marks tickets scanned as valid used and returns how
	// many tickets changed.
	ApplyValidations(ctx context.Context, validations []models.PendingValidation) (int, error)
}

type CertificateService interface {
	ListByUser(ctx context.Context, userID string) ([]models.Certificate, error)
	GetByHash(ctx context.Context, hash string) (models.Certificate, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID string) (models.User, error)
}
