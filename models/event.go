package models

import "time"

// Event is a scheduled gathering attendees enroll in and check into.
// The remote API is the source of truth; the client only caches events
// inside offline snapshots.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`

	// Finished is set by the server once the event is closed and
	// certificates have been issued.
	Finished bool `json:"finished"`
}

// OfflineEvent is a downloaded snapshot of one event together with its
// participant list. Snapshots are replaced wholesale, never patched.
type OfflineEvent struct {
	ID           string        `json:"id"`
	Event        Event         `json:"event"`
	Participants []Participant `json:"participants"`
	DownloadedAt time.Time     `json:"downloaded_at"`
}

// EventStats summarizes an offline snapshot for the closing screen.
type EventStats struct {
	EventID string `json:"event_id"`

	// TotalParticipants counts every participant whose enrollment is not
	// cancelled.
	TotalParticipants int `json:"total_participants"`

	// CheckedIn counts participants with status present.
	CheckedIn int `json:"checked_in"`

	CertificatesGenerated bool      `json:"certificates_generated"`
	DownloadedAt          time.Time `json:"downloaded_at"`
}
