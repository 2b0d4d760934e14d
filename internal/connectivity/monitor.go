package connectivity

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
)

// State is the observed reachability of the remote API.
type State int

const (
	Offline State = iota
	Online
)

func (s State) String() string {
	if s == Online {
		return "online"
	}
	return "offline"
}

// Transition is delivered to subscribers whenever the state changes.
type Transition struct {
	From State
	To   State
	At   time.Time
}

// Reconnected reports whether the transition is offline → online.
func (t Transition) Reconnected() bool {
	return t.From == Offline && t.To == Online
}

// DefaultSubscriberBuffer is the channel capacity handed to each subscriber.
const DefaultSubscriberBuffer = 8

// Monitor is an observable online/offline flag. The zero value is not
// usable; construct it with NewMonitor.
type Monitor struct {
	mu     sync.RWMutex
	state  State
	subs   map[int]chan Transition
	nextID int
	now    func() time.Time
	logger *logger.Logger
}

// NewMonitor returns a monitor starting in the initial state.
func NewMonitor(initial State, log *logger.Logger) *Monitor {
	if log == nil {
		log = logger.Nop()
	}

	return &Monitor{
		state:  initial,
		subs:   make(map[int]chan Transition),
		now:    time.Now,
		logger: log,
	}
}

func (m *Monitor) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Monitor) IsOnline() bool {
	return m.State() == Online
}

// SetOnline is a convenience wrapper around Set.
func (m *Monitor) SetOnline(online bool) {
	if online {
		m.Set(Online)
		return
	}
	m.Set(Offline)
}

// Set records the observed state. Setting the current state again is a
// no-op; a change is sent to every subscriber immediately. A subscriber
// whose buffer is full misses the transition.
func (m *Monitor) Set(next State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == next {
		return
	}

	tr := Transition{From: m.state, To: next, At: m.now()}
	m.state = next

	m.logger.Info().
		Str("func", "Monitor.Set").
		Str("from", tr.From.String()).
		Str("to", tr.To.String()).
		Msg("connectivity changed")

	for id, ch := range m.subs {
		select {
		case ch <- tr:
		default:
			m.logger.Warn().
				Str("func", "Monitor.Set").
				Int("subscriber", id).
				Msg("subscriber is not keeping up, transition dropped")
		}
	}
}

// Subscribe registers a listener. The returned function unsubscribes and
// closes the channel; calling it more than once is safe.
func (m *Monitor) Subscribe() (<-chan Transition, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	ch := make(chan Transition, DefaultSubscriberBuffer)
	m.subs[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subs, id)
			close(ch)
		})
	}

	return ch, unsubscribe
}

// Subscribers returns the number of registered listeners.
func (m *Monitor) Subscribers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs)
}
