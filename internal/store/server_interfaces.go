package store

import (
	"context"

	"github.com/MKhiriev/go-ticket-keeper/models"
)

// UserRecord is an account as held by the dev server.
type UserRecord struct {
	models.User
	PasswordHash []byte
}

type UserRepository interface {
	CreateUser(ctx context.Context, user UserRecord) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (UserRecord, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
}

type EventRepository interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, eventID string) (models.Event, error)
	SaveEvent(ctx context.Context, event models.Event) error
}

// EnrollmentRepository keeps one enrollment per (event, user) pair.
// SaveEnrollment replaces an existing pair.
type EnrollmentRepository interface {
	ListEnrollmentsByEvent(ctx context.Context, eventID string) ([]models.Participant, error)
	ListEnrollmentsByUser(ctx context.Context, userID string) ([]models.Participant, error)
	GetEnrollment(ctx context.Context, eventID, userID string) (models.Participant, error)
	SaveEnrollment(ctx context.Context, enrollment models.Participant) error
}

type TicketLedger interface {
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	GetTicket(ctx context.Context, code string) (models.Ticket, error)
	SaveTicket(ctx context.Context, ticket models.Ticket) error
}

type CertificateRepository interface {
	ListCertificatesByUser(ctx context.Context, userID string) ([]models.Certificate, error)
	GetCertificateByHash(ctx context.Context, hash string) (models.Certificate, error)
	SaveCertificate(ctx context.Context, certificate models.Certificate) error
}
