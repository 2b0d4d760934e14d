package service

import (
	"fmt"

	"github.com/MKhiriev/go-ticket-keeper/internal/config"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
	"github.com/MKhiriev/go-ticket-keeper/internal/validators"
)

// Services is the dev server service set handed to the HTTP handler.
type Services struct {
	AuthService        AuthService
	EventService       EventService
	EnrollmentService  EnrollmentService
	TicketService      TicketService
	CertificateService CertificateService
	UserService        UserService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.ServerStorages, cfg *config.DevServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.Version, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewQueueValidator()
	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService:        NewAuthService(storages.Users, cfg, validator, logger),
		EventService:       NewEventService(storages, cfg.TokenSignKey, logger),
		EnrollmentService:  NewEnrollmentService(storages, ids, validator, logger),
		TicketService:      NewTicketService(storages.Tickets, logger),
		CertificateService: NewCertificateService(storages.Certificates, logger),
		UserService:        NewUserService(storages.Users, logger),
		AppInfoService:     appInfoService,
	}, nil
}
