package tui

import (
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/connectivity"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

type transitionMsg struct {
	transition connectivity.Transition
	// closed is set when the subscription channel was closed.
	closed bool
}

type syncDoneMsg struct {
	result models.SyncResult
	err    error
}

type downloadDoneMsg struct {
	result models.DownloadResult
	err    error
}

type refreshMsg struct {
	counts   models.PendingCounts
	lastSync time.Time
	syncing  bool
	err      error
}

type refreshTickMsg struct{}
