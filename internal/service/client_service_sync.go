// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/adapter"
	"github.com/MKhiriev/go-ticket-keeper/internal/app"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// clientSyncService drains the pending-operation queues into the remote API.
//
// Items are pushed one request at a time in queue order. A rejected item is
// recorded in the result and then dropped together with the rest of its
// queue: only entries up to the highest sequence number read at the start of
// a phase are removed, so operations queued while the phase runs wait for
// the next cycle.
type clientSyncService struct {
	localStore   *store.ClientStorages
	adapter      adapter.ServerAdapter
	connectivity ConnectivityStatus
	gate         *syncGate

	now    func() time.Time
	logger *logger.Logger

	mu   sync.RWMutex
	last *models.SyncResult
}

func NewClientSyncService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, status ConnectivityStatus, logger *logger.Logger) ClientSyncService {
	return newClientSyncService(localStore, serverAdapter, status, newSyncGate(), logger)
}

func newClientSyncService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, status ConnectivityStatus, gate *syncGate, logger *logger.Logger) *clientSyncService {
	return &clientSyncService{
		localStore:   localStore,
		adapter:      serverAdapter,
		connectivity: status,
		gate:         gate,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *clientSyncService) Sync(ctx context.Context) (models.SyncResult, error) {
	startedAt := s.now()

	if !s.connectivity.IsOnline() {
		s.logger.Info().Str("func", "clientSyncService.Sync").Msg("sync skipped: offline")
		return models.SyncResult{Message: app.MsgOffline, StartedAt: startedAt, FinishedAt: startedAt}, ErrOffline
	}

	if !s.gate.tryAcquire() {
		s.logger.Info().Str("func", "clientSyncService.Sync").Msg("sync skipped: already running")
		return models.SyncResult{Message: app.MsgSyncInProgress, StartedAt: startedAt, FinishedAt: startedAt}, ErrSyncInProgress
	}
	defer s.gate.release()

	result := models.SyncResult{StartedAt: startedAt}

	// ── Phase A: check-ins ───────────────────────────────────────────────
	if err := s.drainCheckins(ctx, &result); err != nil {
		return s.abort(result, err)
	}

	// ── Phase B: registrations ───────────────────────────────────────────
	if err := s.drainRegistrations(ctx, &result); err != nil {
		return s.abort(result, err)
	}

	// ── Phase B2/B3: validations and ticket refresh ──────────────────────
	pushed, err := s.pushValidations(ctx, &result)
	if err != nil {
		return s.abort(result, err)
	}
	if pushed {
		if err := s.refreshTickets(ctx, &result); err != nil {
			return s.abort(result, err)
		}
	}

	// ── Phase C: bookkeeping ─────────────────────────────────────────────
	finishedAt := s.now()
	if err := s.localStore.Meta.SetLastSyncTime(ctx, finishedAt); err != nil {
		return s.abort(result, storageFailure("set last sync time", err))
	}

	result.Success = true
	result.FinishedAt = finishedAt
	result.Message = app.MsgSyncCompleted
	if len(result.Errors) > 0 {
		result.Message = app.MsgSyncCompletedWithErrs
	}

	s.logger.Info().
		Str("func", "clientSyncService.Sync").
		Int("checkins", result.Checkins).
		Int("registrations", result.Registrations).
		Int("validations", result.Validations).
		Int("tickets", result.TicketsRefreshed).
		Int("errors", len(result.Errors)).
		Msg("sync finished")

	s.remember(result)
	return result, nil
}

func (s *clientSyncService) IsSyncing() bool {
	return s.gate.isSyncing()
}

func (s *clientSyncService) LastSyncTime(ctx context.Context) (time.Time, error) {
	at, err := s.localStore.Meta.GetLastSyncTime(ctx)
	if err != nil {
		return time.Time{}, storageFailure("get last sync time", err)
	}
	return at, nil
}

func (s *clientSyncService) LastResult() (models.SyncResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return models.SyncResult{}, false
	}
	return *s.last, true
}

func (s *clientSyncService) drainCheckins(ctx context.Context, result *models.SyncResult) error {
	checkins, err := s.localStore.Checkins.GetPendingCheckins(ctx)
	if err != nil {
		return storageFailure("read pending checkins", err)
	}
	if len(checkins) == 0 {
		return nil
	}

	var maxSeq int64
	for _, c := range checkins {
		maxSeq = max(maxSeq, c.Seq)

		if err := s.adapter.PostCheckin(ctx, c); err != nil {
			s.logger.Warn().Err(err).
				Str("func", "clientSyncService.drainCheckins").
				Str("event_id", c.EventID).
				Str("user_id", c.UserID).
				Msg("checkin rejected")
			result.Errors = append(result.Errors, itemError(models.CategoryCheckin, c.UserID, err))
			continue
		}
		result.Checkins++
	}

	if err := s.localStore.Checkins.DeletePendingCheckinsThrough(ctx, maxSeq); err != nil {
		return storageFailure("clear pending checkins", err)
	}
	return nil
}

// registrationGroup is the batch of one event, in queue order.
type registrationGroup struct {
	eventID string
	items   []models.PendingRegistration
}

// groupRegistrations groups by event id in order of first appearance.
func groupRegistrations(registrations []models.PendingRegistration) []registrationGroup {
	index := make(map[string]int)
	var groups []registrationGroup

	for _, r := range registrations {
		i, ok := index[r.EventID]
		if !ok {
			i = len(groups)
			index[r.EventID] = i
			groups = append(groups, registrationGroup{eventID: r.EventID})
		}
		groups[i].items = append(groups[i].items, r)
	}

	return groups
}

func (s *clientSyncService) drainRegistrations(ctx context.Context, result *models.SyncResult) error {
	registrations, err := s.localStore.Registrations.GetPendingRegistrations(ctx)
	if err != nil {
		return storageFailure("read pending registrations", err)
	}
	if len(registrations) == 0 {
		return nil
	}

	var maxSeq int64
	for _, r := range registrations {
		maxSeq = max(maxSeq, r.Seq)
	}

	for _, group := range groupRegistrations(registrations) {
		if err := s.adapter.PostRegistrationBatch(ctx, group.eventID, group.items); err != nil {
			s.logger.Warn().Err(err).
				Str("func", "clientSyncService.drainRegistrations").
				Str("event_id", group.eventID).
				Int("items", len(group.items)).
				Msg("registration batch rejected")
			result.Errors = append(result.Errors, itemError(models.CategoryRegistration, group.eventID, err))
			continue
		}
		result.Registrations += len(group.items)
	}

	if err := s.localStore.Registrations.DeletePendingRegistrationsThrough(ctx, maxSeq); err != nil {
		return storageFailure("clear pending registrations", err)
	}
	return nil
}

// pushValidations sends every queued validation as one batch. Only the
// pushed scans are cleared, and only on success; a code re-scanned during
// the push stays queued. It reports false when the batch was rejected.
func (s *clientSyncService) pushValidations(ctx context.Context, result *models.SyncResult) (bool, error) {
	validations, err := s.localStore.Validations.GetPendingValidations(ctx)
	if err != nil {
		return false, storageFailure("read pending validations", err)
	}
	if len(validations) == 0 {
		return true, nil
	}

	if err := s.adapter.PostValidationBatch(ctx, validations); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientSyncService.pushValidations").
			Int("items", len(validations)).
			Msg("validation batch rejected")
		result.Errors = append(result.Errors, itemError(models.CategoryValidation, "batch", err))
		return false, nil
	}

	if err := s.localStore.Validations.ClearPendingValidations(ctx, validations); err != nil {
		return false, storageFailure("clear pending validations", err)
	}

	result.Validations = len(validations)
	return true, nil
}

func (s *clientSyncService) refreshTickets(ctx context.Context, result *models.SyncResult) error {
	tickets, err := s.adapter.GetTickets(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSyncService.refreshTickets").Msg("ticket refresh failed")
		result.Errors = append(result.Errors, itemError(models.CategoryTickets, "all", err))
		return nil
	}

	if err := s.localStore.Tickets.SaveTickets(ctx, tickets); err != nil {
		return storageFailure("save tickets", err)
	}

	result.TicketsRefreshed = len(tickets)
	return nil
}

func (s *clientSyncService) abort(result models.SyncResult, err error) (models.SyncResult, error) {
	s.logger.Err(err).Str("func", "clientSyncService.Sync").Msg("sync aborted")

	result.Success = false
	result.Message = app.MsgSyncStorageFailure
	result.FinishedAt = s.now()

	s.remember(result)
	return result, err
}

func (s *clientSyncService) remember(result models.SyncResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &result
}
