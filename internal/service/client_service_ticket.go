package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/app"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/internal/validators"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// clientTicketService validates scanned codes without talking to the remote
// API. Every scan is queued as a PendingValidation and reported on the next
// sync.
type clientTicketService struct {
	localStore *store.ClientStorages

	now    func() time.Time
	logger *logger.Logger
}

func NewClientTicketService(localStore *store.ClientStorages, logger *logger.Logger) ClientTicketService {
	return &clientTicketService{localStore: localStore, now: time.Now, logger: logger}
}

// ValidateTicket admits a locally valid ticket once: a valid scan is queued
// and the ticket is marked used. A used or invalid ticket is reported with its
// status. An unknown code queues an invalid scan so the server can audit it.
func (t *clientTicketService) ValidateTicket(ctx context.Context, code string) (models.ValidationOutcome, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return models.ValidationOutcome{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyTicketCode)
	}

	ticket, err := t.localStore.Tickets.GetTicket(ctx, code)
	if errors.Is(err, store.ErrTicketNotFound) {
		if err := t.queueScan(ctx, code, models.ValidationInvalid); err != nil {
			return models.ValidationOutcome{}, err
		}
		return models.ValidationOutcome{Code: code, Message: app.MsgTicketNotFound}, nil
	}
	if err != nil {
		return models.ValidationOutcome{}, storageFailure("get ticket", err)
	}

	if ticket.Status != models.TicketValid {
		return models.ValidationOutcome{
			Code:    code,
			Status:  ticket.Status,
			Message: fmt.Sprintf(app.MsgTicketStatusFmt, ticket.Status),
			Ticket:  &ticket,
		}, nil
	}

	// the scan must survive a failed status write
	if err := t.queueScan(ctx, code, models.ValidationValid); err != nil {
		return models.ValidationOutcome{}, err
	}
	ticket.Status = models.TicketUsed
	if err := t.localStore.Tickets.SaveTickets(ctx, []models.Ticket{ticket}); err != nil {
		return models.ValidationOutcome{}, storageFailure("mark ticket used", err)
	}

	t.logger.Info().
		Str("func", "clientTicketService.ValidateTicket").
		Str("code", code).
		Str("event_id", ticket.EventID).
		Msg("ticket admitted")

	return models.ValidationOutcome{
		Code:    code,
		Valid:   true,
		Status:  models.TicketValid,
		Message: app.MsgTicketValid,
		Ticket:  &ticket,
	}, nil
}

func (t *clientTicketService) CountTickets(ctx context.Context) (int, error) {
	n, err := t.localStore.Tickets.CountTickets(ctx)
	if err != nil {
		return 0, storageFailure("count tickets", err)
	}
	return n, nil
}

func (t *clientTicketService) queueScan(ctx context.Context, code string, status models.ValidationStatus) error {
	scan := models.PendingValidation{Code: code, Timestamp: t.now(), Status: status}
	if err := t.localStore.Validations.AddPendingValidation(ctx, scan); err != nil {
		return storageFailure("queue validation", err)
	}
	return nil
}
