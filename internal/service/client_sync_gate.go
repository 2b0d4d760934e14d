package service

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// syncGate lets at most one sync or download run at a time. A second caller
// is rejected instead of queued.
type syncGate struct {
	sem     *semaphore.Weighted
	syncing atomic.Bool
}

func newSyncGate() *syncGate {
	return &syncGate{sem: semaphore.NewWeighted(1)}
}

func (g *syncGate) tryAcquire() bool {
	if !g.sem.TryAcquire(1) {
		return false
	}
	g.syncing.Store(true)
	return true
}

func (g *syncGate) release() {
	g.syncing.Store(false)
	g.sem.Release(1)
}

func (g *syncGate) isSyncing() bool {
	return g.syncing.Load()
}
