package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ticket-keeper/internal/adapter"
	"github.com/MKhiriev/go-ticket-keeper/internal/config"
	"github.com/MKhiriev/go-ticket-keeper/internal/connectivity"
	"github.com/MKhiriev/go-ticket-keeper/internal/handler"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/service"
	"github.com/MKhiriev/go-ticket-keeper/internal/session"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

const testHashKey = "client-test-hash-key"

// newDevServer starts the seeded dev server API and returns its base URL.
func newDevServer(t *testing.T) *httptest.Server {
	t.Helper()

	storages := store.NewMemoryStorages(logger.Nop())
	require.NoError(t, service.SeedDevData(context.Background(), storages, time.Now()))

	cfg := &config.DevServerConfig{
		HashKey:        testHashKey,
		Version:        "test",
		Location:       time.UTC,
		HTTPAddress:    "127.0.0.1:0",
		RequestTimeout: 5 * time.Second,
		TokenSignKey:   "client-test-sign-key",
		TokenIssuer:    "ticket-keeper-test",
		TokenDuration:  time.Hour,
	}

	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handlers.HTTP.Init())
	t.Cleanup(srv.Close)
	return srv
}

// fakeWatcher stands in for the status view. It runs onOpen, if set, and
// returns.
type fakeWatcher struct {
	opened atomic.Int64
	onOpen func(ctx context.Context)
}

func (f *fakeWatcher) Watch(ctx context.Context) error {
	f.opened.Add(1)
	if f.onOpen != nil {
		f.onOpen(ctx)
	}
	return nil
}

type testClient struct {
	app     *App
	monitor *connectivity.Monitor
	ui      *fakeWatcher
}

// newTestClient wires the real client stack against baseURL with an
// in-memory local database.
func newTestClient(t *testing.T, baseURL string) *testClient {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	cfg := &config.ClientConfig{
		App:     config.ClientApp{HashKey: testHashKey, Location: time.UTC, Version: "test"},
		Adapter: config.ClientAdapter{HTTPAddress: baseURL + "/api", RequestTimeout: 2 * time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}},
		Workers: config.ClientWorkers{SyncInterval: 0, ProbeInterval: time.Hour},
	}

	localStore, err := store.NewClientStorages(ctx, cfg.Storage, log)
	require.NoError(t, err)
	t.Cleanup(func() { localStore.Close() })

	holder := session.NewHolder()
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, holder, log)
	require.NoError(t, err)

	monitor := connectivity.NewMonitor(connectivity.Offline, log)
	prober := connectivity.NewProber(monitor, serverAdapter, cfg.Workers.ProbeInterval, time.Second, log)
	services := service.NewClientServices(localStore, serverAdapter, monitor, holder, log)

	ui := &fakeWatcher{}
	app, err := NewApp(services, prober, ui, cfg, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), log)
	require.NoError(t, err)

	return &testClient{app: app, monitor: monitor, ui: ui}
}

func (c *testClient) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	c.app.SetOutput(&out, &errOut)
	err := c.app.Run(context.Background(), args)
	return out.String(), err
}

func (c *testClient) runJSON(t *testing.T, target any, args ...string) {
	t.Helper()

	out, err := c.run(t, append([]string{"--format", "json"}, args...)...)
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), target), out)
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, nil, nil, &config.ClientConfig{}, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, connectivity.NewProber(nil, nil, time.Second, time.Second, logger.Nop()), nil, nil, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Version(t *testing.T) {
	c := newTestClient(t, newDevServer(t).URL)

	out, err := c.run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version: 1.2.3")
	assert.Contains(t, out, "Build commit: abc123")

	var info map[string]string
	c.runJSON(t, &info, "version")
	assert.Equal(t, "2026-10-01", info["date"])
}

func TestApp_InvalidFormat(t *testing.T) {
	c := newTestClient(t, newDevServer(t).URL)

	_, err := c.run(t, "--format", "yaml", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestApp_LoginRequiresFlags(t *testing.T) {
	c := newTestClient(t, newDevServer(t).URL)

	_, err := c.run(t, "login", "--email", "attendant@test.com")
	assert.Error(t, err)
}

func TestApp_StaffRound(t *testing.T) {
	c := newTestClient(t, newDevServer(t).URL)

	out, err := c.run(t, "login", "--email", "attendant@test.com", "--password", service.SeedPassword)
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as Attendant User")

	out, err = c.run(t, "download")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Download completed")

	var stats models.EventStats
	c.runJSON(t, &stats, "stats", "1")
	assert.Equal(t, 3, stats.TotalParticipants)
	assert.Equal(t, 1, stats.CheckedIn)

	var snapshot models.OfflineEvent
	c.runJSON(t, &snapshot, "event", "1")
	assert.Equal(t, "Go Meetup", snapshot.Event.Title)
	assert.Len(t, snapshot.Participants, 3)

	out, err = c.run(t, "checkin", "1", "2", "--at", "2026-01-10 09:30:00")
	require.NoError(t, err)
	assert.Contains(t, out, "queued for user 2")

	out, err = c.run(t, "register", "1", "--name", "Carla Dias", "--email", "carla@test.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Carla Dias <carla@test.com>")

	var counts statusReport
	c.runJSON(t, &counts, "status")
	assert.True(t, counts.Online)
	assert.True(t, counts.SignedIn)
	assert.Equal(t, 1, counts.Pending.Checkins)
	assert.Equal(t, 1, counts.Pending.Registrations)
	assert.Equal(t, 3, counts.OfflineEvents)

	var result models.SyncResult
	c.runJSON(t, &result, "sync")
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Checkins)
	assert.Empty(t, result.Errors)

	var after statusReport
	c.runJSON(t, &after, "status")
	assert.Zero(t, after.Pending.Total())
	assert.False(t, after.LastSync.IsZero())

	out, err = c.run(t, "delete-snapshot", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Snapshot 2 deleted")

	_, err = c.run(t, "event", "2")
	assert.Error(t, err)

	out, err = c.run(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out")

	c.runJSON(t, &after, "status")
	assert.False(t, after.SignedIn)
}

func TestApp_SessionSurvivesRuns(t *testing.T) {
	c := newTestClient(t, newDevServer(t).URL)

	_, err := c.run(t, "login", "--email", "client@test.com", "--password", service.SeedPassword)
	require.NoError(t, err)

	out, err := c.run(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Client User <client@test.com>")
	assert.Contains(t, out, "ONLINE")
}

func TestApp_AttendeeFlows(t *testing.T) {
	c := newTestClient(t, newDevServer(t).URL)

	_, err := c.run(t, "login", "--email", "client@test.com", "--password", service.SeedPassword)
	require.NoError(t, err)

	var events []models.Event
	c.runJSON(t, &events, "events")
	assert.Len(t, events, 3)

	var resp models.EnrollmentResponse
	c.runJSON(t, &resp, "enroll", "2")
	assert.True(t, resp.Success)

	var enrollments []models.Participant
	c.runJSON(t, &enrollments, "my-enrollments")
	assert.Len(t, enrollments, 3)

	var certs []models.Certificate
	c.runJSON(t, &certs, "certificates")
	require.Len(t, certs, 1)
	assert.Equal(t, "3F9A1C2B7D4E5F60", certs[0].Hash)

	out, err := c.run(t, "verify", "3f9a1c2b7d4e5f60")
	require.NoError(t, err)
	assert.Contains(t, out, "VALID  3F9A1C2B7D4E5F60")

	out, err = c.run(t, "verify", "0000000000000000")
	require.NoError(t, err)
	assert.Contains(t, out, "INVALID")
}

func TestApp_OfflineQueueing(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close()
	c := newTestClient(t, srv.URL)

	out, err := c.run(t, "sync")
	require.ErrorIs(t, err, service.ErrOffline)
	assert.Contains(t, out, "Offline")

	_, err = c.run(t, "download")
	require.ErrorIs(t, err, service.ErrOffline)

	out, err = c.run(t, "checkin", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Check-in #1 queued")

	out, err = c.run(t, "validate", "TKT-9999")
	require.NoError(t, err)
	assert.Contains(t, out, "INVALID")

	out, err = c.run(t, "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "Check-ins (1):")
	assert.Contains(t, out, "Validations (1):")

	out, err = c.run(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "OFFLINE")
	assert.Contains(t, out, "Signed in:      no")
}

func TestApp_CheckinRejectsBadTime(t *testing.T) {
	c := newTestClient(t, newDevServer(t).URL)

	_, err := c.run(t, "checkin", "1", "2", "--at", "yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --at value")
}

func TestApp_WatchRunsBackgroundWorkers(t *testing.T) {
	c := newTestClient(t, newDevServer(t).URL)

	_, err := c.run(t, "watch")
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ui.opened.Load())
	assert.Zero(t, c.monitor.Subscribers(), "sync job is stopped when the view closes")
}

func TestApp_WatchWithoutView(t *testing.T) {
	c := newTestClient(t, newDevServer(t).URL)
	c.app.ui = nil

	_, err := c.run(t, "watch")
	assert.Error(t, err)
}

func TestApp_SeedsConnectivityFromStartupProbe(t *testing.T) {
	c := newTestClient(t, newDevServer(t).URL)
	require.False(t, c.monitor.IsOnline())

	_, err := c.run(t, "version")
	require.NoError(t, err)
	assert.True(t, c.monitor.IsOnline())

	srv := httptest.NewServer(nil)
	srv.Close()
	down := newTestClient(t, srv.URL)
	down.monitor.Set(connectivity.Online)

	_, err = down.run(t, "version")
	require.NoError(t, err)
	assert.False(t, down.monitor.IsOnline())
}

// queueCheckin signs in as the attendant and leaves one check-in queued.
func queueCheckin(t *testing.T, c *testClient) {
	t.Helper()

	_, err := c.run(t, "login", "--email", "attendant@test.com", "--password", service.SeedPassword)
	require.NoError(t, err)
	_, err = c.run(t, "checkin", "1", "2", "--at", "2026-01-10 09:30:00")
	require.NoError(t, err)
}

func TestApp_WatchDoesNotSyncWithoutTransition(t *testing.T) {
	c := newTestClient(t, newDevServer(t).URL)
	queueCheckin(t, c)

	c.ui.onOpen = func(context.Context) {
		assert.True(t, c.monitor.IsOnline(), "seeded before the view opens")
		assert.Equal(t, 1, c.monitor.Subscribers(), "sync job subscribed before the prober runs")
	}

	_, err := c.run(t, "watch")
	require.NoError(t, err)

	_, ok := c.app.services.SyncService.LastResult()
	assert.False(t, ok, "already online at startup is not a reconnect")

	counts, err := c.app.services.QueueService.PendingCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Checkins)
}

func TestApp_WatchSyncsOnReconnect(t *testing.T) {
	c := newTestClient(t, newDevServer(t).URL)
	queueCheckin(t, c)

	c.ui.onOpen = func(context.Context) {
		c.monitor.Set(connectivity.Offline)
		c.monitor.Set(connectivity.Online)

		assert.Eventually(t, func() bool {
			_, ok := c.app.services.SyncService.LastResult()
			return ok
		}, 5*time.Second, 20*time.Millisecond)
	}

	_, err := c.run(t, "watch")
	require.NoError(t, err)

	result, ok := c.app.services.SyncService.LastResult()
	require.True(t, ok)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Checkins)

	counts, err := c.app.services.QueueService.PendingCounts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, counts.Total())
	assert.Zero(t, c.monitor.Subscribers())
}
