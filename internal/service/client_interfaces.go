package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/connectivity"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// ConnectivityStatus reports whether the remote API is currently reachable.
// *connectivity.Monitor satisfies it.
type ConnectivityStatus interface {
	IsOnline() bool
}

// ConnectivityObserver is a ConnectivityStatus that also broadcasts state
// transitions.
type ConnectivityObserver interface {
	ConnectivityStatus
	Subscribe() (<-chan connectivity.Transition, func())
}

// ClientSyncService pushes queued operations to the remote API.
type ClientSyncService interface {
	// Sync runs one sync cycle: check-ins, registrations, validations, the
	// ticket refresh and finally the last sync time.
	//
	// It returns ErrOffline when the monitor reports offline and
	// ErrSyncInProgress when another sync or download holds the gate. In
	// both cases nothing is read or written. Rejected items are reported in
	// SyncResult.Errors and do not fail the cycle; a local storage failure
	// aborts it with Success=false and an error wrapping ErrStorageFailure.
	Sync(ctx context.Context) (models.SyncResult, error)

	// IsSyncing reports whether a sync or download is running right now.
	IsSyncing() bool

	// LastSyncTime returns the completion time of the last successful
	// cycle, or the zero time if none has completed yet.
	LastSyncTime(ctx context.Context) (time.Time, error)

	// LastResult returns the outcome of the most recent Sync call made by
	// this process, if any.
	LastResult() (models.SyncResult, bool)
}

// ClientSnapshotService manages downloaded event snapshots.
type ClientSnapshotService interface {
	// DownloadAllData replaces the snapshot of every event with a fresh
	// copy from the remote API. Shares the sync gate with Sync.
	DownloadAllData(ctx context.Context) (models.DownloadResult, error)

	GetOfflineEvent(ctx context.Context, eventID string) (models.OfflineEvent, error)
	GetAllOfflineEvents(ctx context.Context) ([]models.OfflineEvent, error)
	DeleteOfflineEvent(ctx context.Context, eventID string) error

	// EventStats summarizes one snapshot.
	EventStats(ctx context.Context, eventID string) (models.EventStats, error)
}

// ClientQueueService records operations while offline.
type ClientQueueService interface {
	// EnqueueCheckin queues a check-in. A zero CheckinTime means now.
	EnqueueCheckin(ctx context.Context, checkin models.PendingCheckin) (models.PendingCheckin, error)

	// EnqueueRegistration queues a walk-in registration. A zero Timestamp
	// means now.
	EnqueueRegistration(ctx context.Context, registration models.PendingRegistration) (models.PendingRegistration, error)

	PendingCheckins(ctx context.Context) ([]models.PendingCheckin, error)
	PendingRegistrations(ctx context.Context) ([]models.PendingRegistration, error)
	PendingValidations(ctx context.Context) ([]models.PendingValidation, error)

	PendingCounts(ctx context.Context) (models.PendingCounts, error)
}

// ClientTicketService validates scanned ticket codes against the local
// ticket cache.
type ClientTicketService interface {
	ValidateTicket(ctx context.Context, code string) (models.ValidationOutcome, error)
	CountTickets(ctx context.Context) (int, error)
}

// ClientAuthService manages the device session.
type ClientAuthService interface {
	// Login authenticates against the remote API, starts the session and
	// persists it so it survives restarts.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// RestoreSession reloads the persisted session into memory. It returns
	// ErrNotSignedIn when there is none.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout clears the in-memory and the persisted session.
	Logout(ctx context.Context) error

	Current() (models.Session, bool)
}

// ClientCertificateService lists and verifies attendance certificates.
type ClientCertificateService interface {
	MyCertificates(ctx context.Context) ([]models.Certificate, error)

	// Verify looks a certificate up by hash. An unknown hash is reported as
	// Valid=false with a nil error.
	Verify(ctx context.Context, hash string) (models.CertificateVerification, error)
}

// ClientEnrollmentService covers the attendee side: browsing events and
// self-enrollment.
type ClientEnrollmentService interface {
	// ListEvents reads from the remote API when online and from the
	// downloaded snapshots otherwise.
	ListEvents(ctx context.Context) ([]models.Event, error)
	Enroll(ctx context.Context, eventID string) (models.EnrollmentResponse, error)
	MyEnrollments(ctx context.Context) ([]models.Participant, error)
}

// ClientSyncJob triggers Sync automatically.
type ClientSyncJob interface {
	// Start runs Sync on every offline to online transition and, when
	// interval is positive, on every tick while online. Any previously
	// running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the job and blocks until its goroutine has exited.
	Stop()
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
