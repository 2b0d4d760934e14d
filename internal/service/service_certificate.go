package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

type certificateService struct {
	certificates store.CertificateRepository

	logger *logger.Logger
}

func NewCertificateService(certificates store.CertificateRepository, logger *logger.Logger) CertificateService {
	return &certificateService{
		certificates: certificates,
		logger:       logger,
	}
}

func (s *certificateService) ListByUser(ctx context.Context, userID string) ([]models.Certificate, error) {
	certs, err := s.certificates.ListCertificatesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing certificates of user %s: %w", userID, err)
	}
	return certs, nil
}

// GetByHash matches hashes case-insensitively; issued hashes are upper case.
func (s *certificateService) GetByHash(ctx context.Context, hash string) (models.Certificate, error) {
	hash = strings.ToUpper(strings.TrimSpace(hash))
	if hash == "" {
		return models.Certificate{}, ErrInvalidDataProvided
	}

	cert, err := s.certificates.GetCertificateByHash(ctx, hash)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("error getting certificate: %w", err)
	}
	return cert, nil
}
