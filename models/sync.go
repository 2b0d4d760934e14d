package models

import (
	"fmt"
	"time"
)

// SyncErrorCategory names the kind of item a [SyncError] refers to.
type SyncErrorCategory string

const (
	CategoryCheckin      SyncErrorCategory = "checkin"
	CategoryRegistration SyncErrorCategory = "registration"
	CategoryValidation   SyncErrorCategory = "validation"
	CategoryTickets      SyncErrorCategory = "tickets"
	CategoryEvent        SyncErrorCategory = "event"
	CategoryStorage      SyncErrorCategory = "storage"
)

// SyncError describes one item that could not be pushed or pulled.
// Key identifies the item: a user id for check-ins, an event id for
// registration batches and snapshots.
type SyncError struct {
	Category SyncErrorCategory `json:"category"`
	Key      string            `json:"key"`
	Message  string            `json:"message"`
}

func (e SyncError) String() string {
	return fmt.Sprintf("%s %s: %s", e.Category, e.Key, e.Message)
}

// SyncResult is the outcome of one sync cycle.
//
// Success is false only when the cycle could not run (offline, already
// running) or was aborted by an unexpected failure. Rejected items are
// reported in Errors while Success stays true.
type SyncResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	Checkins         int `json:"checkins"`
	Registrations    int `json:"registrations"`
	Validations      int `json:"validations"`
	TicketsRefreshed int `json:"tickets_refreshed"`

	Errors []SyncError `json:"errors,omitempty"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// DownloadResult is the outcome of a bulk snapshot refresh.
type DownloadResult struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message"`
	Events       int         `json:"events"`
	Participants int         `json:"participants"`
	Errors       []SyncError `json:"errors,omitempty"`
}
