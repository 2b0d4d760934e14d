package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ticket-keeper/internal/adapter"
	"github.com/MKhiriev/go-ticket-keeper/internal/app"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/validators"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

type clientCertificateService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientCertificateService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientCertificateService {
	return &clientCertificateService{adapter: serverAdapter, logger: logger}
}

func (c *clientCertificateService) MyCertificates(ctx context.Context) ([]models.Certificate, error) {
	certs, err := c.adapter.GetMyCertificates(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return certs, nil
}

// Verify resolves the event title and participant name on a best-effort
// basis: a failed lookup leaves the field empty.
func (c *clientCertificateService) Verify(ctx context.Context, hash string) (models.CertificateVerification, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return models.CertificateVerification{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyCertificateID)
	}

	cert, err := c.adapter.VerifyCertificate(ctx, hash)
	if errors.Is(err, adapter.ErrNotFound) {
		return models.CertificateVerification{Message: app.MsgCertificateNotFound}, nil
	}
	if err != nil {
		return models.CertificateVerification{}, mapAdapterError(err)
	}

	verification := models.CertificateVerification{
		Valid:       true,
		Certificate: &cert,
		Message:     app.MsgCertificateValid,
	}

	if event, err := c.adapter.GetEvent(ctx, cert.EventID); err == nil {
		verification.EventTitle = event.Title
	} else {
		c.logger.Debug().Err(err).Str("event_id", cert.EventID).Msg("certificate event lookup failed")
	}

	if user, err := c.adapter.GetUser(ctx, cert.UserID); err == nil {
		verification.ParticipantName = user.Name
	} else {
		c.logger.Debug().Err(err).Str("user_id", cert.UserID).Msg("certificate participant lookup failed")
	}

	return verification, nil
}
