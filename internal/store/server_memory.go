package store

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// ServerStorages groups the dev server repositories.
type ServerStorages struct {
	Users        UserRepository
	Events       EventRepository
	Enrollments  EnrollmentRepository
	Tickets      TicketLedger
	Certificates CertificateRepository
}

// NewMemoryStorages returns empty repositories backed by one in-process
// store. Everything is lost when the process exits.
func NewMemoryStorages(logger *logger.Logger) *ServerStorages {
	logger.Info().Msg("creating in-memory storages...")

	m := newMemoryStore()
	return &ServerStorages{
		Users:        m,
		Events:       m,
		Enrollments:  m,
		Tickets:      m,
		Certificates: m,
	}
}

type enrollmentKey struct {
	eventID string
	userID  string
}

// memoryStore keeps every collection in maps guarded by one RWMutex. The
// order slices preserve insertion order for listings.
type memoryStore struct {
	mu sync.RWMutex

	users      map[string]UserRecord
	userEmails map[string]string
	lastUserID int64

	events     map[string]models.Event
	eventOrder []string

	enrollments     map[enrollmentKey]models.Participant
	enrollmentOrder []enrollmentKey

	tickets     map[string]models.Ticket
	ticketOrder []string

	certificates     map[string]models.Certificate
	certificateOrder []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:        make(map[string]UserRecord),
		userEmails:   make(map[string]string),
		events:       make(map[string]models.Event),
		enrollments:  make(map[enrollmentKey]models.Participant),
		tickets:      make(map[string]models.Ticket),
		certificates: make(map[string]models.Certificate),
	}
}

// ── users ────────────────────────────────────────────────────────────────────

// CreateUser assigns the next numeric id when user.ID is empty. Emails are
// unique, compared case-insensitively.
func (m *memoryStore) CreateUser(ctx context.Context, user UserRecord) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email := normalizeEmail(user.Email)
	if _, exists := m.userEmails[email]; exists {
		return models.User{}, ErrEmailAlreadyExists
	}

	if user.ID == "" {
		m.lastUserID++
		user.ID = strconv.FormatInt(m.lastUserID, 10)
	} else if id, err := strconv.ParseInt(user.ID, 10, 64); err == nil && id > m.lastUserID {
		m.lastUserID = id
	}

	m.users[user.ID] = user
	m.userEmails[email] = user.ID

	return user.User, nil
}

func (m *memoryStore) FindUserByEmail(ctx context.Context, email string) (UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.userEmails[normalizeEmail(email)]
	if !ok {
		return UserRecord{}, ErrNoUserWasFound
	}
	return m.users[id], nil
}

func (m *memoryStore) GetUser(ctx context.Context, userID string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user.User, nil
}

// ── events ───────────────────────────────────────────────────────────────────

func (m *memoryStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]models.Event, 0, len(m.eventOrder))
	for _, id := range m.eventOrder {
		events = append(events, m.events[id])
	}
	return events, nil
}

func (m *memoryStore) GetEvent(ctx context.Context, eventID string) (models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	event, ok := m.events[eventID]
	if !ok {
		return models.Event{}, ErrEventNotFound
	}
	return event, nil
}

func (m *memoryStore) SaveEvent(ctx context.Context, event models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.events[event.ID]; !exists {
		m.eventOrder = append(m.eventOrder, event.ID)
	}
	m.events[event.ID] = event
	return nil
}

// ── enrollments ──────────────────────────────────────────────────────────────

func (m *memoryStore) ListEnrollmentsByEvent(ctx context.Context, eventID string) ([]models.Participant, error) {
	return m.listEnrollments(func(k enrollmentKey) bool { return k.eventID == eventID }), nil
}

func (m *memoryStore) ListEnrollmentsByUser(ctx context.Context, userID string) ([]models.Participant, error) {
	return m.listEnrollments(func(k enrollmentKey) bool { return k.userID == userID }), nil
}

func (m *memoryStore) listEnrollments(match func(enrollmentKey) bool) []models.Participant {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Participant, 0)
	for _, key := range m.enrollmentOrder {
		if match(key) {
			out = append(out, m.withUser(copyParticipant(m.enrollments[key])))
		}
	}
	return out
}

func (m *memoryStore) GetEnrollment(ctx context.Context, eventID, userID string) (models.Participant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.enrollments[enrollmentKey{eventID: eventID, userID: userID}]
	if !ok {
		return models.Participant{}, ErrEnrollmentNotFound
	}
	return m.withUser(copyParticipant(p)), nil
}

func (m *memoryStore) SaveEnrollment(ctx context.Context, enrollment models.Participant) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := enrollmentKey{eventID: enrollment.EventID, userID: enrollment.UserID}
	if _, exists := m.enrollments[key]; !exists {
		m.enrollmentOrder = append(m.enrollmentOrder, key)
	}
	m.enrollments[key] = copyParticipant(enrollment)
	return nil
}

// withUser fills name and email from the account. Callers hold m.mu.
func (m *memoryStore) withUser(p models.Participant) models.Participant {
	if user, ok := m.users[p.UserID]; ok {
		p.Name = user.Name
		p.Email = user.Email
	}
	return p
}

func copyParticipant(p models.Participant) models.Participant {
	if p.CheckinTime != nil {
		t := *p.CheckinTime
		p.CheckinTime = &t
	}
	if p.CreatedAt != nil {
		t := *p.CreatedAt
		p.CreatedAt = &t
	}
	p.CheckedIn = p.CheckinTime != nil
	return p
}

// ── tickets ──────────────────────────────────────────────────────────────────

func (m *memoryStore) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tickets := make([]models.Ticket, 0, len(m.ticketOrder))
	for _, code := range m.ticketOrder {
		tickets = append(tickets, m.tickets[code])
	}
	return tickets, nil
}

func (m *memoryStore) GetTicket(ctx context.Context, code string) (models.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ticket, ok := m.tickets[code]
	if !ok {
		return models.Ticket{}, ErrTicketNotFound
	}
	return ticket, nil
}

func (m *memoryStore) SaveTicket(ctx context.Context, ticket models.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.tickets[ticket.Code]; !exists {
		m.ticketOrder = append(m.ticketOrder, ticket.Code)
	}
	m.tickets[ticket.Code] = ticket
	return nil
}

// ── certificates ─────────────────────────────────────────────────────────────

func (m *memoryStore) ListCertificatesByUser(ctx context.Context, userID string) ([]models.Certificate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Certificate, 0)
	for _, hash := range m.certificateOrder {
		if cert := m.certificates[hash]; cert.UserID == userID {
			out = append(out, cert)
		}
	}
	return out, nil
}

func (m *memoryStore) GetCertificateByHash(ctx context.Context, hash string) (models.Certificate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cert, ok := m.certificates[hash]
	if !ok {
		return models.Certificate{}, ErrCertificateNotFound
	}
	return cert, nil
}

func (m *memoryStore) SaveCertificate(ctx context.Context, certificate models.Certificate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.certificates[certificate.Hash]; !exists {
		m.certificateOrder = append(m.certificateOrder, certificate.Hash)
	}
	m.certificates[certificate.Hash] = certificate
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
