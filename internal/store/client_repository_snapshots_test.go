package store

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

func sampleSnapshot(id string, at time.Time, participants ...models.Participant) models.OfflineEvent {
	return models.OfflineEvent{
		ID:           id,
		Event:        models.Event{ID: id, Title: "Event " + id, StartsAt: at},
		Participants: participants,
		DownloadedAt: at,
	}
}

func TestSnapshotRepository_SaveReplacesWholesale(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()
	at := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	checkin := at.Add(time.Hour)

	require.NoError(t, s.Snapshots.SaveEventSnapshot(ctx, sampleSnapshot("7", at,
		models.Participant{UserID: "1", Name: "Ana", Status: models.EnrollmentPending},
		models.Participant{UserID: "2", Name: "Bia", Status: models.EnrollmentPresent, CheckinTime: &checkin, CheckedIn: true},
	)))

	got, err := s.Snapshots.GetOfflineEvent(ctx, "7")
	require.NoError(t, err)
	require.Len(t, got.Participants, 2)
	assert.Equal(t, "Event 7", got.Event.Title)
	assert.True(t, got.Participants[1].CheckedIn)
	assert.True(t, checkin.Equal(*got.Participants[1].CheckinTime))
	assert.True(t, at.Equal(got.DownloadedAt))

	// second save with one participant replaces the list
	later := at.Add(24 * time.Hour)
	require.NoError(t, s.Snapshots.SaveEventSnapshot(ctx, sampleSnapshot("7", later,
		models.Participant{UserID: "3", Name: "Caio", Status: models.EnrollmentPending},
	)))

	got, err = s.Snapshots.GetOfflineEvent(ctx, "7")
	require.NoError(t, err)
	require.Len(t, got.Participants, 1)
	assert.Equal(t, "3", got.Participants[0].UserID)
	assert.True(t, later.Equal(got.DownloadedAt))
}

func TestSnapshotRepository_GetAllAndDelete(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()
	at := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	all, err := s.Snapshots.GetAllOfflineEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, s.Snapshots.SaveEventSnapshot(ctx, sampleSnapshot("1", at)))
	require.NoError(t, s.Snapshots.SaveEventSnapshot(ctx, sampleSnapshot("2", at.Add(time.Minute))))

	all, err = s.Snapshots.GetAllOfflineEvents(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2", all[0].ID, "most recent download first")
	assert.NotNil(t, all[1].Participants)

	require.NoError(t, s.Snapshots.DeleteOfflineEvent(ctx, "1"))
	_, err = s.Snapshots.GetOfflineEvent(ctx, "1")
	assert.ErrorIs(t, err, ErrOfflineEventNotFound)

	// deleting an unknown id is not an error
	require.NoError(t, s.Snapshots.DeleteOfflineEvent(ctx, "404"))
}

func TestSnapshotRepository_CorruptedRow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSnapshotRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, event, participants, downloaded_at")).
		WithArgs("9").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event", "participants", "downloaded_at"}).
			AddRow("9", "{broken", "[]", int64(0)))

	_, err := repo.GetOfflineEvent(testContext(), "9")
	assert.ErrorIs(t, err, ErrCorruptedSnapshot)
}

func TestSyncMetaRepository_LastSyncTime(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()

	got, err := s.Meta.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	at := time.Date(2026, 3, 1, 12, 0, 0, 123000000, time.UTC)
	require.NoError(t, s.Meta.SetLastSyncTime(ctx, at))
	require.NoError(t, s.Meta.SetLastSyncTime(ctx, at.Add(time.Minute)))

	got, err = s.Meta.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, at.Add(time.Minute).Equal(got))
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()

	_, err := s.Sessions.GetSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	created := time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)
	require.NoError(t, s.Sessions.SaveSession(ctx, models.Session{
		UserID: "42", Email: "staff@test.com", Role: models.RoleAttendant, Token: "t1", CreatedAt: created,
	}))
	require.NoError(t, s.Sessions.SaveSession(ctx, models.Session{
		UserID: "42", Email: "staff@test.com", Role: models.RoleAttendant, Token: "t2", CreatedAt: created,
	}))

	got, err := s.Sessions.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t2", got.Token)
	assert.Equal(t, models.RoleAttendant, got.Role)
	assert.True(t, created.Equal(got.CreatedAt))

	require.NoError(t, s.Sessions.DeleteSession(ctx))
	_, err = s.Sessions.GetSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()
	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(assert.AnError))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrBusy})))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
}

func TestSqliteFilePath(t *testing.T) {
	assert.Equal(t, "", sqliteFilePath(":memory:"))
	assert.Equal(t, "", sqliteFilePath("file:x?mode=memory"))
	assert.Equal(t, "data/app.db", sqliteFilePath("file:data/app.db?_busy_timeout=5000"))
	assert.Equal(t, "app.db", sqliteFilePath("app.db"))
}
