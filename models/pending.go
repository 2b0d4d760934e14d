package models

import "time"

// PendingCheckin is a check-in recorded on this device that the server has
// not acknowledged yet. Seq is assigned by the local store on insert and is
// never reused.
type PendingCheckin struct {
	Seq         int64     `json:"seq"`
	EventID     string    `json:"event_id"`
	UserID      string    `json:"user_id"`
	CheckinTime time.Time `json:"checkin_time"`
}

// PendingRegistration is an on-site registration of a walk-in attendee.
type PendingRegistration struct {
	Seq       int64     `json:"seq"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidationStatus is the local verdict for a scanned ticket code.
type ValidationStatus string

const (
	ValidationValid   ValidationStatus = "valid"
	ValidationInvalid ValidationStatus = "invalid"
)

// PendingValidation is a ticket scan waiting to be reported to the server.
// It is keyed by Code; a later scan of the same code replaces it.
type PendingValidation struct {
	Code      string           `json:"code"`
	Timestamp time.Time        `json:"timestamp"`
	Status    ValidationStatus `json:"status"`
}

// PendingCounts is the depth of every pending-operation queue.
type PendingCounts struct {
	Checkins      int `json:"checkins"`
	Registrations int `json:"registrations"`
	Validations   int `json:"validations"`
}

// Total returns the number of queued operations of all kinds.
func (c PendingCounts) Total() int {
	return c.Checkins + c.Registrations + c.Validations
}
