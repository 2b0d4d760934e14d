package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/service"
	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// Request and response bodies that differ from the models' JSON form.

type loginResponse struct {
	Token  string          `json:"token"`
	Role   models.UserRole `json:"role"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	UserID string          `json:"user_id"`
}

type checkinRequest struct {
	CheckinTime string `json:"checkin_time"`
}

type registrationUser struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CheckinTime string `json:"checkin_time"`
}

type registrationBatchRequest struct {
	Users []registrationUser `json:"users"`
}

type registrationBatchResponse struct {
	Registered   int                  `json:"registered"`
	Participants []models.Participant `json:"participants"`
}

type validationItem struct {
	Code      string                  `json:"code"`
	Timestamp int64                   `json:"timestamp"`
	Status    models.ValidationStatus `json:"status"`
}

type validationBatchRequest struct {
	Validations []validationItem `json:"validations"`
}

type validationBatchResponse struct {
	Received int `json:"received"`
	Updated  int `json:"updated"`
}

// decodeJSON decodes the request body into out. Any failure is reported as
// service.ErrInvalidDataProvided.
func decodeJSON(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: invalid JSON: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}

// parseOptionalTime returns the zero time for an empty value; services treat
// it as "now".
func parseOptionalTime(raw string, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, nil
	}
	t, err := utils.ParseServerTime(raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return t, nil
}
