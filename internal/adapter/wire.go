package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

func formatServerTime(t time.Time, loc *time.Location) string {
	return utils.FormatServerTime(t, loc)
}

func parseServerTime(raw string, loc *time.Location) (time.Time, error) {
	return utils.ParseServerTime(raw, loc)
}

func parseOptionalTime(raw *string, loc *time.Location) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := parseServerTime(*raw, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// flexString decodes a JSON string or number into its textual form. The API
// is not consistent about numeric ids.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string {
	return string(f)
}

// ── responses ───────────────────────────────────────────────────────────────

type eventResponse struct {
	ID          flexString `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	ImageURL    string     `json:"image_url"`
	ImageURLAlt string     `json:"imageUrl"`
	StartsAt    *string    `json:"starts_at"`
	EndsAt      *string    `json:"ends_at"`
	Finished    bool       `json:"finished"`
}

func (e eventResponse) toModel(loc *time.Location) (models.Event, error) {
	if e.ID == "" {
		return models.Event{}, errors.New("event without id")
	}

	startsAt, err := parseOptionalTime(e.StartsAt, loc)
	if err != nil {
		return models.Event{}, fmt.Errorf("event %s starts_at: %w", e.ID, err)
	}
	endsAt, err := parseOptionalTime(e.EndsAt, loc)
	if err != nil {
		return models.Event{}, fmt.Errorf("event %s ends_at: %w", e.ID, err)
	}

	event := models.Event{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		ImageURL:    e.ImageURL,
		Finished:    e.Finished,
	}
	if event.ImageURL == "" {
		event.ImageURL = e.ImageURLAlt
	}
	if startsAt != nil {
		event.StartsAt = *startsAt
	}
	if endsAt != nil {
		event.EndsAt = *endsAt
	}

	return event, nil
}

type enrollmentResponse struct {
	UserID      flexString `json:"user_id"`
	EventID     flexString `json:"event_id"`
	Status      string     `json:"status"`
	Source      string     `json:"source"`
	CheckinTime *string    `json:"checkin_time"`
	CreatedAt   *string    `json:"created_at"`
	UserName    string     `json:"user_name"`
	UserEmail   string     `json:"user_email"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
}

// toModel converts and normalizes one enrollment. A status other than
// present drops any check-in time; present without a time is rejected.
func (e enrollmentResponse) toModel(fallbackEventID string, loc *time.Location) (models.Participant, error) {
	if e.UserID == "" {
		return models.Participant{}, errors.New("enrollment without user_id")
	}

	status := models.EnrollmentStatus(e.Status)
	if !status.IsValid() {
		return models.Participant{}, fmt.Errorf("enrollment of user %s: unknown status %q", e.UserID, e.Status)
	}

	checkinTime, err := parseOptionalTime(e.CheckinTime, loc)
	if err != nil {
		return models.Participant{}, fmt.Errorf("enrollment of user %s checkin_time: %w", e.UserID, err)
	}
	createdAt, err := parseOptionalTime(e.CreatedAt, loc)
	if err != nil {
		return models.Participant{}, fmt.Errorf("enrollment of user %s created_at: %w", e.UserID, err)
	}

	if status != models.EnrollmentPresent {
		checkinTime = nil
	} else if checkinTime == nil {
		return models.Participant{}, fmt.Errorf("enrollment of user %s is present without checkin_time", e.UserID)
	}

	p := models.Participant{
		UserID:      e.UserID.String(),
		EventID:     e.EventID.String(),
		Name:        firstNonEmpty(e.UserName, e.Name),
		Email:       firstNonEmpty(e.UserEmail, e.Email),
		Status:      status,
		Source:      models.EnrollmentSource(e.Source),
		CheckinTime: checkinTime,
		CheckedIn:   checkinTime != nil,
		CreatedAt:   createdAt,
	}
	if p.EventID == "" {
		p.EventID = fallbackEventID
	}

	return p, nil
}

// toParticipants converts every well-formed row. Malformed rows are dropped
// and described in the returned error, which wraps ErrPartialResponse.
func toParticipants(in []enrollmentResponse, fallbackEventID string, loc *time.Location) ([]models.Participant, error) {
	out := make([]models.Participant, 0, len(in))
	var dropped []string
	for _, e := range in {
		p, err := e.toModel(fallbackEventID, loc)
		if err != nil {
			dropped = append(dropped, err.Error())
			continue
		}
		out = append(out, p)
	}

	if len(dropped) > 0 {
		return out, fmt.Errorf("%w: %s", ErrPartialResponse, strings.Join(dropped, "; "))
	}
	return out, nil
}

type ticketResponse struct {
	Code       string     `json:"code"`
	EventID    flexString `json:"event_id"`
	Status     string     `json:"status"`
	HolderName string     `json:"holder_name"`
}

func (t ticketResponse) toModel() (models.Ticket, error) {
	if t.Code == "" {
		return models.Ticket{}, errors.New("ticket without code")
	}

	status := models.TicketStatus(t.Status)
	switch status {
	case models.TicketValid, models.TicketUsed, models.TicketInvalid:
	default:
		return models.Ticket{}, fmt.Errorf("ticket %s: unknown status %q", t.Code, t.Status)
	}

	return models.Ticket{
		Code:       t.Code,
		EventID:    t.EventID.String(),
		Status:     status,
		HolderName: t.HolderName,
	}, nil
}

type certificateResponse struct {
	EventID  flexString `json:"event_id"`
	UserID   flexString `json:"user_id"`
	Hash     string     `json:"hash"`
	CertHash string     `json:"certificate_hash"`
	IssuedAt *string    `json:"issued_at"`
}

func (c certificateResponse) toModel(loc *time.Location) (models.Certificate, error) {
	hash := firstNonEmpty(c.Hash, c.CertHash)
	if hash == "" {
		return models.Certificate{}, errors.New("certificate without hash")
	}

	issuedAt, err := parseOptionalTime(c.IssuedAt, loc)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("certificate %s issued_at: %w", hash, err)
	}

	cert := models.Certificate{
		EventID: c.EventID.String(),
		UserID:  c.UserID.String(),
		Hash:    hash,
	}
	if issuedAt != nil {
		cert.IssuedAt = *issuedAt
	}
	return cert, nil
}

type userResponse struct {
	ID    flexString `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  string     `json:"role"`
}

func (u userResponse) toModel() (models.User, error) {
	if u.ID == "" {
		return models.User{}, errors.New("user without id")
	}
	return models.User{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  models.UserRole(u.Role),
	}, nil
}

type loginResponse struct {
	Token  string     `json:"token"`
	Role   string     `json:"role"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	UserID flexString `json:"user_id"`
}

type enrollResponse struct {
	Success    bool                `json:"success"`
	TicketCode string              `json:"ticket_code"`
	TicketAlt  string              `json:"ticketCode"`
	Enrollment *enrollmentResponse `json:"enrollment"`
}

// ── requests ────────────────────────────────────────────────────────────────

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

type validationItem struct {
	Code      string                  `json:"code"`
	Timestamp int64                   `json:"timestamp"`
	Status    models.ValidationStatus `json:"status"`
}

type validationBatchRequest struct {
	Validations []validationItem `json:"validations"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
