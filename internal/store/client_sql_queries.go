// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ticket-keeper/models"
)

const (
	ticketsTable              = "tickets"
	pendingValidationsTable   = "pending_validations"
	pendingRegistrationsTable = "pending_registrations"
	pendingCheckinsTable      = "pending_checkins"
)

const (
	upsertTicket = `
		INSERT INTO tickets (code, event_id, status, holder_name)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (code) DO UPDATE SET
			event_id = excluded.event_id,
			status = excluded.status,
			holder_name = excluded.holder_name;`

	getTicketByCode = `
		SELECT code, event_id, status, holder_name
		FROM tickets
		WHERE code = ?;`

	upsertPendingValidation = `
		INSERT INTO pending_validations (code, validated_at, status)
		VALUES (?, ?, ?)
		ON CONFLICT (code) DO UPDATE SET
			validated_at = excluded.validated_at,
			status = excluded.status;`

	getAllPendingValidations = `
		SELECT code, validated_at, status
		FROM pending_validations
		ORDER BY validated_at, code;`

	insertPendingRegistration = `
		INSERT INTO pending_registrations (name, email, event_id, created_at)
		VALUES (?, ?, ?, ?);`

	getAllPendingRegistrations = `
		SELECT seq, name, email, event_id, created_at
		FROM pending_registrations
		ORDER BY seq;`

	deletePendingRegistrationsThrough = `DELETE FROM pending_registrations WHERE seq <= ?;`

	insertPendingCheckin = `
		INSERT INTO pending_checkins (event_id, user_id, checkin_time)
		VALUES (?, ?, ?);`

	getAllPendingCheckins = `
		SELECT seq, event_id, user_id, checkin_time
		FROM pending_checkins
		ORDER BY seq;`

	deletePendingCheckinsThrough = `DELETE FROM pending_checkins WHERE seq <= ?;`

	upsertOfflineEvent = `
		INSERT INTO offline_events (id, event, participants, downloaded_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			event = excluded.event,
			participants = excluded.participants,
			downloaded_at = excluded.downloaded_at;`

	getOfflineEventByID = `
		SELECT id, event, participants, downloaded_at
		FROM offline_events
		WHERE id = ?;`

	getAllOfflineEvents = `
		SELECT id, event, participants, downloaded_at
		FROM offline_events
		ORDER BY downloaded_at DESC, id;`

	deleteOfflineEventByID = `DELETE FROM offline_events WHERE id = ?;`

	upsertSyncMeta = `
		INSERT INTO sync_meta (meta_key, meta_value)
		VALUES (?, ?)
		ON CONFLICT (meta_key) DO UPDATE SET meta_value = excluded.meta_value;`

	getSyncMeta = `SELECT meta_value FROM sync_meta WHERE meta_key = ?;`

	upsertSession = `
		INSERT INTO session (id, user_id, name, email, role, token, created_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			name = excluded.name,
			email = excluded.email,
			role = excluded.role,
			token = excluded.token,
			created_at = excluded.created_at;`

	getCurrentSession = `
		SELECT user_id, name, email, role, token, created_at
		FROM session
		WHERE id = 1;`

	deleteCurrentSession = `DELETE FROM session;`
)

const lastSyncTimeKey = "last_sync_time"

// buildDeleteValidationsQuery renders
// DELETE FROM pending_validations WHERE ((code = ? AND validated_at = ?) OR ...).
func buildDeleteValidationsQuery(validations []models.PendingValidation) (string, []any, error) {
	match := make(sq.Or, 0, len(validations))
	for _, v := range validations {
		match = append(match, sq.And{
			sq.Eq{"code": v.Code},
			sq.Eq{"validated_at": toMillis(v.Timestamp)},
		})
	}
	return sq.Delete(pendingValidationsTable).Where(match).ToSql()
}

func buildCountQuery(table string) (string, []any, error) {
	return sq.Select("COUNT(*)").From(table).ToSql()
}

// Timestamps are stored as unix milliseconds.
func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}
