package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-ticket-keeper/models"
)

func TestHolder_Lifecycle(t *testing.T) {
	h := NewHolder()

	_, ok := h.Current()
	assert.False(t, ok)
	assert.Empty(t, h.Token())

	h.Start(models.Session{UserID: "17", Email: "attendant@test.com", Role: models.RoleAttendant, Token: " tok "})

	s, ok := h.Current()
	assert.True(t, ok)
	assert.Equal(t, "17", s.UserID)
	assert.Equal(t, "tok", h.Token())

	h.Clear()
	_, ok = h.Current()
	assert.False(t, ok)
	assert.Empty(t, h.Token())
}

func TestHolder_StartWithoutTokenIsInactive(t *testing.T) {
	h := NewHolder()
	h.Start(models.Session{UserID: "17"})

	_, ok := h.Current()
	assert.False(t, ok)
}

func TestHolder_Concurrent(t *testing.T) {
	h := NewHolder()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			h.Start(models.Session{UserID: "1", Token: "t"})
		}()
		go func() {
			defer wg.Done()
			_ = h.Token()
			_, _ = h.Current()
		}()
	}
	wg.Wait()

	assert.Equal(t, "t", h.Token())
}
