package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

type ticketRepository struct {
	*DB
	logger *logger.Logger
}

func NewTicketRepository(db *DB, logger *logger.Logger) TicketRepository {
	return &ticketRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveTickets writes every ticket inside one transaction. Any failure rolls
// the whole batch back.
func (t *ticketRepository) SaveTickets(ctx context.Context, tickets []models.Ticket) error {
	log := logger.FromContext(ctx)

	if len(tickets) == 0 {
		return nil
	}

	return t.withRetry(ctx, func() error {
		tx, err := t.DB.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).
				Str("func", "ticketRepository.SaveTickets").
				Int("tickets_count", len(tickets)).
				Msg("failed to begin transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		stmt, err := tx.PrepareContext(ctx, upsertTicket)
		if err != nil {
			log.Err(err).
				Str("func", "ticketRepository.SaveTickets").
				Msg("failed to prepare ticket upsert")
			return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
		}
		defer stmt.Close()

		for idx, ticket := range tickets {
			if _, err = stmt.ExecContext(ctx, ticket.Code, ticket.EventID, ticket.Status, ticket.HolderName); err != nil {
				log.Err(err).
					Str("func", "ticketRepository.SaveTickets").
					Int("iteration", idx+1).
					Str("code", ticket.Code).
					Msg("failed to upsert ticket")
				return fmt.Errorf("failed to save ticket at index %d: %w: %w", idx, ErrExecutingStatement, err)
			}
		}

		if err = tx.Commit(); err != nil {
			log.Err(err).
				Str("func", "ticketRepository.SaveTickets").
				Msg("failed to commit tickets")
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}

		log.Debug().
			Str("func", "ticketRepository.SaveTickets").
			Int("tickets_count", len(tickets)).
			Msg("tickets saved")
		return nil
	})
}

func (t *ticketRepository) GetTicket(ctx context.Context, code string) (models.Ticket, error) {
	log := logger.FromContext(ctx)

	var ticket models.Ticket
	err := t.DB.QueryRowContext(ctx, getTicketByCode, code).Scan(
		&ticket.Code,
		&ticket.EventID,
		&ticket.Status,
		&ticket.HolderName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ticket{}, ErrTicketNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "ticketRepository.GetTicket").
			Str("code", code).
			Msg("failed to scan ticket row")
		return models.Ticket{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return ticket, nil
}

func (t *ticketRepository) CountTickets(ctx context.Context) (int, error) {
	return t.countRows(ctx, ticketsTable, "ticketRepository.CountTickets")
}
