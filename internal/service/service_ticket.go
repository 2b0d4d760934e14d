package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

type ticketService struct {
	tickets store.TicketLedger

	logger *logger.Logger
}

func NewTicketService(tickets store.TicketLedger, logger *logger.Logger) TicketService {
	return &ticketService{
		tickets: tickets,
		logger:  logger,
	}
}

func (s *ticketService) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	tickets, err := s.tickets.ListTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing tickets: %w", err)
	}
	return tickets, nil
}

// ApplyValidations is idempotent: a code already used stays used, unknown
// codes and invalid scans are only logged for audit.
func (s *ticketService) ApplyValidations(ctx context.Context, validations []models.PendingValidation) (int, error) {
	log := logger.FromContext(ctx)

	changed := 0
	for _, v := range validations {
		if v.Status != models.ValidationValid {
			log.Info().Str("code", v.Code).Time("scanned_at", v.Timestamp).Msg("invalid ticket scan reported")
			continue
		}

		ticket, err := s.tickets.GetTicket(ctx, v.Code)
		if errors.Is(err, store.ErrTicketNotFound) {
			log.Warn().Str("code", v.Code).Msg("validation for unknown ticket")
			continue
		}
		if err != nil {
			return changed, fmt.Errorf("error getting ticket %s: %w", v.Code, err)
		}
		if ticket.Status != models.TicketValid {
			continue
		}

		ticket.Status = models.TicketUsed
		if err = s.tickets.SaveTicket(ctx, ticket); err != nil {
			return changed, fmt.Errorf("error saving ticket %s: %w", v.Code, err)
		}
		changed++
	}

	return changed, nil
}
