package validators

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/models"
)

const (
	FieldEventID     = "event_id"
	FieldUserID      = "user_id"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldCode        = "code"
	FieldStatus      = "status"
	FieldSource      = "source"
	FieldTimestamp   = "timestamp"
	FieldCheckinTime = "checkin_time"
)

// clockSkew is how far in the future a device timestamp may be.
const clockSkew = 5 * time.Minute

// QueueValidator validates pending operations, credentials and enrollment
// requests.
type QueueValidator struct {
	now func() time.Time
}

func NewQueueValidator() Validator {
	return &QueueValidator{now: time.Now}
}

func (v *QueueValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PendingCheckin:
		return v.validateCheckin(value, fields...)
	case *models.PendingCheckin:
		return v.validateCheckin(*value, fields...)

	case models.PendingRegistration:
		return v.validateRegistration(value, fields...)
	case *models.PendingRegistration:
		return v.validateRegistration(*value, fields...)

	case models.PendingValidation:
		return v.validateValidation(value, fields...)
	case *models.PendingValidation:
		return v.validateValidation(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.EnrollmentRequest:
		return v.validateEnrollment(value, fields...)
	case *models.EnrollmentRequest:
		return v.validateEnrollment(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *QueueValidator) validateCheckin(c models.PendingCheckin, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEventID, FieldUserID, FieldCheckinTime}
	}

	for _, f := range fields {
		switch f {
		case FieldEventID:
			if isBlank(c.EventID) {
				return ErrInvalidEventID
			}
		case FieldUserID:
			if isBlank(c.UserID) {
				return ErrInvalidUserID
			}
		case FieldCheckinTime:
			if err := v.checkTimestamp(c.CheckinTime); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QueueValidator) validateRegistration(r models.PendingRegistration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEventID, FieldName, FieldEmail, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldEventID:
			if isBlank(r.EventID) {
				return ErrInvalidEventID
			}
		case FieldName:
			if isBlank(r.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if !isEmail(r.Email) {
				return ErrInvalidEmail
			}
		case FieldTimestamp:
			if err := v.checkTimestamp(r.Timestamp); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QueueValidator) validateValidation(p models.PendingValidation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCode, FieldStatus, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldCode:
			if isBlank(p.Code) {
				return ErrEmptyTicketCode
			}
		case FieldStatus:
			if p.Status != models.ValidationValid && p.Status != models.ValidationInvalid {
				return ErrInvalidStatus
			}
		case FieldTimestamp:
			if err := v.checkTimestamp(p.Timestamp); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QueueValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(c.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QueueValidator) validateEnrollment(r models.EnrollmentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldEventID, FieldSource}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if isBlank(r.UserID) {
				return ErrInvalidUserID
			}
		case FieldEventID:
			if isBlank(r.EventID) {
				return ErrInvalidEventID
			}
		case FieldSource:
			if r.Source != models.SourceWeb && r.Source != models.SourcePresential {
				return ErrInvalidSource
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// checkTimestamp rejects times too far ahead of the device clock. The zero
// time is allowed; callers replace it with "now" before queueing.
func (v *QueueValidator) checkTimestamp(ts time.Time) error {
	if ts.IsZero() {
		return nil
	}
	if ts.After(v.now().Add(clockSkew)) {
		return ErrFutureTimestamp
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
