// Package session holds the signed-in identity of this device.
//
// A [Holder] is created empty at startup, filled by login (or restored from
// the local store) and cleared by logout. The remote gateway reads the
// bearer token from it on every authorized call, so a logout takes effect
// for the next request without rebuilding anything.
package session

import (
	"strings"
	"sync"

	"github.com/MKhiriev/go-ticket-keeper/models"
)

type Holder struct {
	mu      sync.RWMutex
	current models.Session
	active  bool
}

func NewHolder() *Holder {
	return &Holder{}
}

// Start replaces the current session.
func (h *Holder) Start(s models.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s.Token = strings.TrimSpace(s.Token)
	h.current = s
	h.active = s.Token != ""
}

func (h *Holder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.current = models.Session{}
	h.active = false
}

// Token returns the bearer token, or "" when signed out.
func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current.Token
}

// Current returns the session and whether one is active.
func (h *Holder) Current() (models.Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current, h.active
}
