package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
)

// countRows returns the number of rows in table.
func (db *DB) countRows(ctx context.Context, table, funcName string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountQuery(table)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("table", table).Msg("failed to build count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		log.Err(err).Str("func", funcName).Str("table", table).Msg("failed to count rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}

// exec runs a single write statement, retrying transient lock errors.
func (db *DB) exec(ctx context.Context, funcName, query string, args ...any) error {
	err := db.withRetry(ctx, func() error {
		_, execErr := db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// insert runs an INSERT and returns the AUTOINCREMENT key it assigned.
func (db *DB) insert(ctx context.Context, funcName, query string, args ...any) (int64, error) {
	var seq int64
	err := db.withRetry(ctx, func() error {
		res, execErr := db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		seq, execErr = res.LastInsertId()
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to insert queued operation")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return seq, nil
}
