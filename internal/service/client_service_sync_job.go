package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
)

type clientSyncJob struct {
	syncService  ClientSyncService
	connectivity ConnectivityObserver
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.Sync when
// the monitor reports a reconnect. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService, observer ConnectivityObserver, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncService: syncService, connectivity: observer, logger: logger}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a goroutine that syncs on every offline to online transition and,
// if interval is positive, on every tick while online. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	transitions, unsubscribe := j.connectivity.Subscribe()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		defer unsubscribe()

		var tick <-chan time.Time
		if interval > 0 {
			t := time.NewTicker(interval)
			defer t.Stop()
			tick = t.C
		}

		for {
			select {
			case <-jobCtx.Done():
				return
			case tr, ok := <-transitions:
				if !ok {
					return
				}
				if tr.Reconnected() {
					j.run(jobCtx, "reconnect")
				}
			case <-tick:
				if j.connectivity.IsOnline() {
					j.run(jobCtx, "interval")
				}
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) run(ctx context.Context, trigger string) {
	result, err := j.syncService.Sync(ctx)
	switch {
	case errors.Is(err, ErrOffline), errors.Is(err, ErrSyncInProgress):
		j.logger.Debug().Str("func", "clientSyncJob.run").Str("trigger", trigger).Msg(result.Message)
	case err != nil:
		j.logger.Err(err).Str("func", "clientSyncJob.run").Str("trigger", trigger).Msg("automatic sync failed")
	default:
		j.logger.Info().
			Str("func", "clientSyncJob.run").
			Str("trigger", trigger).
			Int("errors", len(result.Errors)).
			Msg(result.Message)
	}
}
