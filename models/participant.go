package models

import "time"

// EnrollmentStatus is the lifecycle state of one user's enrollment in an event.
type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "pending"
	EnrollmentPresent   EnrollmentStatus = "present"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
)

// IsValid reports whether s is one of the known enrollment states.
func (s EnrollmentStatus) IsValid() bool {
	switch s {
	case EnrollmentPending, EnrollmentPresent, EnrollmentCancelled:
		return true
	}
	return false
}

// EnrollmentSource records how an enrollment was created.
type EnrollmentSource string

const (
	SourceWeb        EnrollmentSource = "web"
	SourcePresential EnrollmentSource = "presential"
)

// Participant is a user's enrollment in a specific event, as cached in an
// offline snapshot.
//
// CheckinTime is non-nil exactly when Status is [EnrollmentPresent];
// CheckedIn mirrors CheckinTime != nil.
type Participant struct {
	UserID      string           `json:"user_id"`
	EventID     string           `json:"event_id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Status      EnrollmentStatus `json:"status"`
	Source      EnrollmentSource `json:"source,omitempty"`
	CheckinTime *time.Time       `json:"checkin_time"`
	CheckedIn   bool             `json:"checked_in"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"`
}

// Enrollment request and response for the web self-enrollment flow.
type EnrollmentRequest struct {
	UserID  string           `json:"user_id"`
	EventID string           `json:"event_id"`
	Source  EnrollmentSource `json:"source"`
}

type EnrollmentResponse struct {
	Success    bool         `json:"success"`
	TicketCode string       `json:"ticket_code,omitempty"`
	Enrollment *Participant `json:"enrollment,omitempty"`
}
