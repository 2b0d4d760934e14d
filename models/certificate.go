package models

import "time"

// Certificate proves attendance; Hash is the public verification code.
type Certificate struct {
	EventID  string    `json:"event_id"`
	UserID   string    `json:"user_id"`
	Hash     string    `json:"hash"`
	IssuedAt time.Time `json:"issued_at"`
}

// CertificateVerification is a verified certificate enriched with the
// event title and participant name when they could be resolved.
type CertificateVerification struct {
	Valid           bool         `json:"valid"`
	Certificate     *Certificate `json:"certificate,omitempty"`
	EventTitle      string       `json:"event_title,omitempty"`
	ParticipantName string       `json:"participant_name,omitempty"`
	Message         string       `json:"message,omitempty"`
}
