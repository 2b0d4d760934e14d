package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// TicketRepository holds the locally known tickets keyed by code.
type TicketRepository interface {
	// SaveTickets upserts all tickets in one transaction: either every
	// ticket is written or none is.
	SaveTickets(ctx context.Context, tickets []models.Ticket) error
	// GetTicket returns [ErrTicketNotFound] for unknown codes.
	GetTicket(ctx context.Context, code string) (models.Ticket, error)
	CountTickets(ctx context.Context) (int, error)
}

// ValidationQueue holds ticket scans keyed by code. Adding a scan for a code
// already queued replaces it.
type ValidationQueue interface {
	AddPendingValidation(ctx context.Context, validation models.PendingValidation) error
	GetPendingValidations(ctx context.Context) ([]models.PendingValidation, error)
	// ClearPendingValidations removes the listed scans. An entry is removed
	// only if both its code and timestamp still match, so a re-scan queued
	// after the list was read survives.
	ClearPendingValidations(ctx context.Context, validations []models.PendingValidation) error
	CountPendingValidations(ctx context.Context) (int, error)
}

// RegistrationQueue holds on-site registrations in insertion order.
type RegistrationQueue interface {
	// AddPendingRegistration stores r under a freshly assigned sequence key
	// and returns it with Seq set. Existing entries are never overwritten.
	AddPendingRegistration(ctx context.Context, r models.PendingRegistration) (models.PendingRegistration, error)
	// GetPendingRegistrations returns all entries ordered by Seq.
	GetPendingRegistrations(ctx context.Context) ([]models.PendingRegistration, error)
	// DeletePendingRegistrationsThrough removes every entry with Seq <= seq.
	DeletePendingRegistrationsThrough(ctx context.Context, seq int64) error
	CountPendingRegistrations(ctx context.Context) (int, error)
}

// CheckinQueue holds check-ins in insertion order.
type CheckinQueue interface {
	AddPendingCheckin(ctx context.Context, c models.PendingCheckin) (models.PendingCheckin, error)
	GetPendingCheckins(ctx context.Context) ([]models.PendingCheckin, error)
	DeletePendingCheckinsThrough(ctx context.Context, seq int64) error
	CountPendingCheckins(ctx context.Context) (int, error)
}

// SnapshotRepository holds downloaded events keyed by event id.
type SnapshotRepository interface {
	// SaveEventSnapshot replaces the snapshot for snapshot.ID wholesale.
	SaveEventSnapshot(ctx context.Context, snapshot models.OfflineEvent) error
	// GetOfflineEvent returns [ErrOfflineEventNotFound] for unknown ids.
	GetOfflineEvent(ctx context.Context, eventID string) (models.OfflineEvent, error)
	GetAllOfflineEvents(ctx context.Context) ([]models.OfflineEvent, error)
	DeleteOfflineEvent(ctx context.Context, eventID string) error
}

// SyncMetaRepository holds sync bookkeeping.
type SyncMetaRepository interface {
	SetLastSyncTime(ctx context.Context, at time.Time) error
	// GetLastSyncTime returns the zero time if no sync has completed yet.
	GetLastSyncTime(ctx context.Context) (time.Time, error)
}

// SessionRepository persists the signed-in session across restarts.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns [ErrSessionNotFound] when nobody is signed in.
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}
