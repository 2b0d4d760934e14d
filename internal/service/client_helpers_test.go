package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ticket-keeper/internal/config"
	"github.com/MKhiriev/go-ticket-keeper/internal/connectivity"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newTestLocalStore opens a migrated SQLite file under t.TempDir().
func newTestLocalStore(t *testing.T) *store.ClientStorages {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "client.db")
	s, err := store.NewClientStorages(testContext(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func onlineMonitor() *connectivity.Monitor {
	return connectivity.NewMonitor(connectivity.Online, logger.Nop())
}

func offlineMonitor() *connectivity.Monitor {
	return connectivity.NewMonitor(connectivity.Offline, logger.Nop())
}

// fixedClock returns times starting at start and advancing by step per call.
func fixedClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}
