package service

import (
	"github.com/MKhiriev/go-ticket-keeper/internal/adapter"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/session"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/internal/validators"
)

type ClientServices struct {
	AuthService        ClientAuthService
	SyncService        ClientSyncService
	SnapshotService    ClientSnapshotService
	QueueService       ClientQueueService
	TicketService      ClientTicketService
	CertificateService ClientCertificateService
	EnrollmentService  ClientEnrollmentService
	SyncJob            ClientSyncJob
}

// NewClientServices wires every client service. Sync and snapshot download
// share one gate so they never run concurrently.
func NewClientServices(
	localStore *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	monitor ConnectivityObserver,
	holder *session.Holder,
	logger *logger.Logger,
) *ClientServices {
	validator := validators.NewQueueValidator()
	gate := newSyncGate()

	syncSvc := newClientSyncService(localStore, serverAdapter, monitor, gate, logger)

	return &ClientServices{
		AuthService:        NewClientAuthService(localStore, serverAdapter, holder, validator, logger),
		SyncService:        syncSvc,
		SnapshotService:    newClientSnapshotService(localStore, serverAdapter, monitor, gate, logger),
		QueueService:       NewClientQueueService(localStore, validator, logger),
		TicketService:      NewClientTicketService(localStore, logger),
		CertificateService: NewClientCertificateService(serverAdapter, logger),
		EnrollmentService:  NewClientEnrollmentService(localStore, serverAdapter, monitor, holder, validator, logger),
		SyncJob:            NewClientSyncJob(syncSvc, monitor, logger),
	}
}
