package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEventID     = errors.New("event id is required")
	ErrInvalidUserID      = errors.New("user id is required")
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmptyPassword      = errors.New("password is required")
	ErrEmptyTicketCode    = errors.New("ticket code is required")
	ErrInvalidStatus      = errors.New("invalid validation status")
	ErrInvalidSource      = errors.New("invalid enrollment source")
	ErrFutureTimestamp    = errors.New("timestamp is in the future")
	ErrEmptyCertificateID = errors.New("certificate hash is required")
)
