package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-ticket-keeper/internal/config"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

type httpServerAdapter struct {
	client   *utils.HTTPClient
	hasher   *utils.Hasher
	location *time.Location
	tokens   TokenSource

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The base URL is normalized (scheme added, trailing slash dropped) and
// must carry the API prefix, e.g. http://localhost:8080/api. tokens supplies
// the bearer credential for authorized calls.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, tokens TokenSource, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	loc := appCfg.Location
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}

	return &httpServerAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher:   utils.NewHasher(appCfg.HashKey),
		location: loc,
		tokens:   tokens,
		logger:   log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	_, err := h.client.R().SetContext(ctx).Head("/events")
	if err != nil {
		return networkError("ping", err)
	}
	return nil
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	var body loginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		Post("/auth/login")
	if err != nil {
		return models.Session{}, networkError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}
	if err = decode(resp, &body); err != nil {
		return models.Session{}, invalidResponse("login", err)
	}
	if body.Token == "" {
		return models.Session{}, invalidResponse("login", fmt.Errorf("empty token"))
	}

	userID := body.UserID.String()
	if userID == "" {
		userID, err = utils.ParseUserIDFromJWT(body.Token)
		if err != nil {
			return models.Session{}, invalidResponse("login parse user id", err)
		}
	}

	email := body.Email
	if email == "" {
		email = creds.Email
	}

	return models.Session{
		UserID:    userID,
		Name:      body.Name,
		Email:     email,
		Role:      models.UserRole(body.Role),
		Token:     body.Token,
		CreatedAt: time.Now(),
	}, nil
}

func (h *httpServerAdapter) ListEvents(ctx context.Context) ([]models.Event, error) {
	var body []eventResponse
	if err := h.get(ctx, false, "/events", "list events", &body); err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(body))
	for _, e := range body {
		event, err := e.toModel(h.location)
		if err != nil {
			return nil, invalidResponse("list events", err)
		}
		events = append(events, event)
	}

	return events, nil
}

func (h *httpServerAdapter) GetEvent(ctx context.Context, eventID string) (models.Event, error) {
	var body eventResponse
	if err := h.get(ctx, false, "/events/"+url.PathEscape(eventID), "get event", &body); err != nil {
		return models.Event{}, err
	}

	event, err := body.toModel(h.location)
	if err != nil {
		return models.Event{}, invalidResponse("get event", err)
	}
	return event, nil
}

func (h *httpServerAdapter) GetEventEnrollments(ctx context.Context, eventID string) ([]models.Participant, error) {
	var body []enrollmentResponse
	if err := h.get(ctx, true, "/enrollments/events/"+url.PathEscape(eventID), "get event enrollments", &body); err != nil {
		return nil, err
	}

	participants, err := toParticipants(body, eventID, h.location)
	if err != nil {
		h.logger.Warn().Err(err).
			Str("func", "httpServerAdapter.GetEventEnrollments").
			Str("event_id", eventID).
			Int("kept", len(participants)).
			Msg("dropped malformed enrollments")
		return participants, fmt.Errorf("get event enrollments: %w", err)
	}
	return participants, nil
}

func (h *httpServerAdapter) PostCheckin(ctx context.Context, checkin models.PendingCheckin) error {
	path := fmt.Sprintf("/enrollments/events/%s/users/%s/presence",
		url.PathEscape(checkin.EventID), url.PathEscape(checkin.UserID))

	return h.post(ctx, path, "post checkin", checkinRequest{
		CheckinTime: formatServerTime(checkin.CheckinTime, h.location),
	}, false)
}

func (h *httpServerAdapter) PostRegistrationBatch(ctx context.Context, eventID string, registrations []models.PendingRegistration) error {
	req := registrationBatchRequest{Users: make([]registrationUser, 0, len(registrations))}
	for _, r := range registrations {
		req.Users = append(req.Users, registrationUser{
			Name:        r.Name,
			Email:       r.Email,
			CheckinTime: formatServerTime(r.Timestamp, h.location),
		})
	}

	return h.post(ctx, "/enrollments/events/"+url.PathEscape(eventID)+"/sync", "post registration batch", req, true)
}

func (h *httpServerAdapter) PostValidationBatch(ctx context.Context, validations []models.PendingValidation) error {
	req := validationBatchRequest{Validations: make([]validationItem, 0, len(validations))}
	for _, v := range validations {
		req.Validations = append(req.Validations, validationItem{
			Code:      v.Code,
			Timestamp: v.Timestamp.UnixMilli(),
			Status:    v.Status,
		})
	}

	return h.post(ctx, "/sync/validate-batch", "post validation batch", req, true)
}

func (h *httpServerAdapter) GetTickets(ctx context.Context) ([]models.Ticket, error) {
	var body []ticketResponse
	if err := h.get(ctx, true, "/sync/tickets", "get tickets", &body); err != nil {
		return nil, err
	}

	tickets := make([]models.Ticket, 0, len(body))
	for _, t := range body {
		ticket, err := t.toModel()
		if err != nil {
			return nil, invalidResponse("get tickets", err)
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

func (h *httpServerAdapter) Enroll(ctx context.Context, enrollment models.EnrollmentRequest) (models.EnrollmentResponse, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.EnrollmentResponse{}, err
	}

	resp, err := req.SetBody(enrollment).Post("/enrollments")
	if err != nil {
		return models.EnrollmentResponse{}, networkError("enroll request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EnrollmentResponse{}, err
	}

	var body enrollResponse
	if err = decode(resp, &body); err != nil {
		return models.EnrollmentResponse{}, invalidResponse("enroll", err)
	}

	result := models.EnrollmentResponse{
		Success:    body.Success,
		TicketCode: firstNonEmpty(body.TicketCode, body.TicketAlt),
	}
	if body.Enrollment != nil {
		p, err := body.Enrollment.toModel(enrollment.EventID, h.location)
		if err != nil {
			return models.EnrollmentResponse{}, invalidResponse("enroll", err)
		}
		result.Enrollment = &p
	}

	return result, nil
}

func (h *httpServerAdapter) GetMyEnrollments(ctx context.Context) ([]models.Participant, error) {
	var body []enrollmentResponse
	if err := h.get(ctx, true, "/enrollments/me", "get my enrollments", &body); err != nil {
		return nil, err
	}

	participants, err := toParticipants(body, "", h.location)
	if err != nil {
		h.logger.Warn().Err(err).
			Str("func", "httpServerAdapter.GetMyEnrollments").
			Int("kept", len(participants)).
			Msg("dropped malformed enrollments")
		return participants, fmt.Errorf("get my enrollments: %w", err)
	}
	return participants, nil
}

func (h *httpServerAdapter) GetMyCertificates(ctx context.Context) ([]models.Certificate, error) {
	var body []certificateResponse
	if err := h.get(ctx, true, "/certificates/me", "get my certificates", &body); err != nil {
		return nil, err
	}

	certs := make([]models.Certificate, 0, len(body))
	for _, c := range body {
		cert, err := c.toModel(h.location)
		if err != nil {
			return nil, invalidResponse("get my certificates", err)
		}
		certs = append(certs, cert)
	}
	return certs, nil
}

func (h *httpServerAdapter) VerifyCertificate(ctx context.Context, hash string) (models.Certificate, error) {
	var body certificateResponse
	if err := h.get(ctx, false, "/certificates/verify/"+url.PathEscape(hash), "verify certificate", &body); err != nil {
		return models.Certificate{}, err
	}

	if body.Hash == "" && body.CertHash == "" {
		body.Hash = hash
	}
	cert, err := body.toModel(h.location)
	if err != nil {
		return models.Certificate{}, invalidResponse("verify certificate", err)
	}
	return cert, nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context, userID string) (models.User, error) {
	var body userResponse
	if err := h.get(ctx, true, "/users/"+url.PathEscape(userID), "get user", &body); err != nil {
		return models.User{}, err
	}

	user, err := body.toModel()
	if err != nil {
		return models.User{}, invalidResponse("get user", err)
	}
	return user, nil
}

// authedRequest attaches the bearer token. Without a session nothing is sent.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := ""
	if h.tokens != nil {
		token = strings.TrimSpace(h.tokens.Token())
	}
	if token == "" {
		return nil, fmt.Errorf("%w: no session token", ErrUnauthorized)
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func (h *httpServerAdapter) get(ctx context.Context, authorized bool, path, op string, out any) error {
	req := h.client.R().SetContext(ctx)
	if authorized {
		var err error
		if req, err = h.authedRequest(ctx); err != nil {
			return err
		}
	}

	resp, err := req.Get(path)
	if err != nil {
		h.logger.Debug().Err(err).Str("func", "httpServerAdapter.get").Str("path", path).Msg("request failed")
		return networkError(op+" request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = decode(resp, out); err != nil {
		return invalidResponse(op, err)
	}

	return nil
}

// post sends body as JSON to an authorized endpoint. When signed is set and
// a hash key is configured, the body's HMAC goes in utils.HashHeader.
func (h *httpServerAdapter) post(ctx context.Context, path, op string, body any, signed bool) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: encode body: %w", op, err)
	}
	if signed && h.hasher != nil {
		req.SetHeader(utils.HashHeader, h.hasher.SumHex(payload))
	}

	resp, err := req.SetBody(payload).Post(path)
	if err != nil {
		h.logger.Debug().Err(err).Str("func", "httpServerAdapter.post").Str("path", path).Msg("request failed")
		return networkError(op+" request", err)
	}

	return mapHTTPError(resp)
}

func decode(resp *resty.Response, out any) error {
	body := resp.Body()
	if len(body) == 0 {
		return fmt.Errorf("empty body")
	}
	return json.Unmarshal(body, out)
}
