package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ticket-keeper/internal/adapter"
	"github.com/MKhiriev/go-ticket-keeper/internal/app"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/mock"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

func newTestSnapshotSvc(t *testing.T, status ConnectivityStatus) (*clientSnapshotService, *mock.MockServerAdapter, *store.ClientStorages) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	localStore := newTestLocalStore(t)

	svc := newClientSnapshotService(localStore, mockAdapter, status, newSyncGate(), logger.Nop())
	return svc, mockAdapter, localStore
}

func checkedInAt(at time.Time) *time.Time {
	return &at
}

func TestClientSnapshotService_DownloadAllData_Offline(t *testing.T) {
	svc, _, _ := newTestSnapshotSvc(t, offlineMonitor())

	result, err := svc.DownloadAllData(testContext())

	require.ErrorIs(t, err, ErrOffline)
	assert.False(t, result.Success)
	assert.Equal(t, app.MsgOffline, result.Message)
}

func TestClientSnapshotService_DownloadAllData_PerEventErrorContinues(t *testing.T) {
	svc, mockAdapter, localStore := newTestSnapshotSvc(t, onlineMonitor())
	ctx := testContext()
	svc.now = fixedClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), time.Minute)

	events := []models.Event{{ID: "1", Title: "Go Meetup"}, {ID: "2", Title: "Broken"}, {ID: "3", Title: "Rust Night"}}
	gomock.InOrder(
		mockAdapter.EXPECT().ListEvents(gomock.Any()).Return(events, nil),
		mockAdapter.EXPECT().GetEventEnrollments(gomock.Any(), "1").Return([]models.Participant{
			{UserID: "9", EventID: "1", Name: "Ana", Status: models.EnrollmentPresent, CheckinTime: checkedInAt(time.UnixMilli(1000))},
			{UserID: "10", EventID: "1", Name: "Bo", Status: models.EnrollmentPending},
		}, nil),
		mockAdapter.EXPECT().GetEventEnrollments(gomock.Any(), "2").Return(nil, fmt.Errorf("enrollments: %w", adapter.ErrForbidden)),
		mockAdapter.EXPECT().GetEventEnrollments(gomock.Any(), "3").Return(nil, nil),
	)

	result, err := svc.DownloadAllData(ctx)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, app.MsgDownloadCompletedWithErrs, result.Message)
	assert.Equal(t, 2, result.Events)
	assert.Equal(t, 2, result.Participants)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, models.CategoryEvent, result.Errors[0].Category)
	assert.Equal(t, "2", result.Errors[0].Key)

	snapshot, err := localStore.Snapshots.GetOfflineEvent(ctx, "1")
	require.NoError(t, err)
	require.Len(t, snapshot.Participants, 2)
	assert.True(t, snapshot.Participants[0].CheckedIn)
	assert.False(t, snapshot.Participants[1].CheckedIn)
	assert.Equal(t, "Go Meetup", snapshot.Event.Title)

	_, err = localStore.Snapshots.GetOfflineEvent(ctx, "2")
	assert.ErrorIs(t, err, store.ErrOfflineEventNotFound)

	empty, err := localStore.Snapshots.GetOfflineEvent(ctx, "3")
	require.NoError(t, err)
	assert.Empty(t, empty.Participants)
}

func TestClientSnapshotService_DownloadAllData_MalformedRowsKeepEvent(t *testing.T) {
	svc, mockAdapter, localStore := newTestSnapshotSvc(t, onlineMonitor())
	ctx := testContext()

	partial := fmt.Errorf("get event enrollments: %w: enrollment of user 10 is present without checkin_time", adapter.ErrPartialResponse)
	mockAdapter.EXPECT().ListEvents(gomock.Any()).Return([]models.Event{{ID: "5", Title: "Go Meetup"}}, nil)
	mockAdapter.EXPECT().GetEventEnrollments(gomock.Any(), "5").Return([]models.Participant{
		{UserID: "9", EventID: "5", Status: models.EnrollmentPending},
	}, partial)

	result, err := svc.DownloadAllData(ctx)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, app.MsgDownloadCompletedWithErrs, result.Message)
	assert.Equal(t, 1, result.Events)
	assert.Equal(t, 1, result.Participants)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, models.CategoryEvent, result.Errors[0].Category)
	assert.Equal(t, "5", result.Errors[0].Key)
	assert.Contains(t, result.Errors[0].Message, "user 10")

	snapshot, err := localStore.Snapshots.GetOfflineEvent(ctx, "5")
	require.NoError(t, err)
	require.Len(t, snapshot.Participants, 1)
	assert.Equal(t, "9", snapshot.Participants[0].UserID)
}

func TestClientSnapshotService_DownloadAllData_OverwritesSnapshot(t *testing.T) {
	svc, mockAdapter, _ := newTestSnapshotSvc(t, onlineMonitor())
	ctx := testContext()

	first := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	times := []time.Time{first, second}
	svc.now = func() time.Time {
		now := times[0]
		times = times[1:]
		return now
	}

	mockAdapter.EXPECT().ListEvents(gomock.Any()).Return([]models.Event{{ID: "5", Title: "Go Meetup"}}, nil).Times(2)
	gomock.InOrder(
		mockAdapter.EXPECT().GetEventEnrollments(gomock.Any(), "5").Return([]models.Participant{
			{UserID: "9", EventID: "5", Status: models.EnrollmentPending},
		}, nil),
		mockAdapter.EXPECT().GetEventEnrollments(gomock.Any(), "5").Return([]models.Participant{
			{UserID: "9", EventID: "5", Status: models.EnrollmentPresent, CheckinTime: checkedInAt(second)},
			{UserID: "10", EventID: "5", Status: models.EnrollmentPending},
		}, nil),
	)

	_, err := svc.DownloadAllData(ctx)
	require.NoError(t, err)
	_, err = svc.DownloadAllData(ctx)
	require.NoError(t, err)

	all, err := svc.GetAllOfflineEvents(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	snapshot, err := svc.GetOfflineEvent(ctx, "5")
	require.NoError(t, err)
	assert.True(t, second.Equal(snapshot.DownloadedAt))
	assert.Len(t, snapshot.Participants, 2)
}

func TestClientSnapshotService_DownloadAllData_EventListFailure(t *testing.T) {
	svc, mockAdapter, _ := newTestSnapshotSvc(t, onlineMonitor())

	netErr := fmt.Errorf("list events: %w: %w", adapter.ErrNetwork, errors.New("connection refused"))
	mockAdapter.EXPECT().ListEvents(gomock.Any()).Return(nil, netErr)

	result, err := svc.DownloadAllData(testContext())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.False(t, result.Success)
	assert.Equal(t, app.MsgDownloadFailed, result.Message)
	assert.False(t, svc.gate.isSyncing())
}

func TestClientSnapshotService_DownloadAllData_StorageFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSnapshots := mock.NewMockSnapshotRepository(ctrl)

	localStore := &store.ClientStorages{Snapshots: mockSnapshots}
	svc := newClientSnapshotService(localStore, mockAdapter, onlineMonitor(), newSyncGate(), logger.Nop())

	mockAdapter.EXPECT().ListEvents(gomock.Any()).Return([]models.Event{{ID: "1"}, {ID: "2"}}, nil)
	mockAdapter.EXPECT().GetEventEnrollments(gomock.Any(), "1").Return(nil, nil)
	mockSnapshots.EXPECT().SaveEventSnapshot(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	// event 2 is never fetched

	result, err := svc.DownloadAllData(testContext())

	require.ErrorIs(t, err, ErrStorageFailure)
	assert.False(t, result.Success)
	assert.Equal(t, app.MsgDownloadStorageFailure, result.Message)
	assert.Zero(t, result.Events)
}

func TestClientSnapshotService_SharesGateWithSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	localStore := newTestLocalStore(t)
	gate := newSyncGate()

	syncSvc := newClientSyncService(localStore, mockAdapter, onlineMonitor(), gate, logger.Nop())
	snapshotSvc := newClientSnapshotService(localStore, mockAdapter, onlineMonitor(), gate, logger.Nop())

	require.True(t, gate.tryAcquire())
	assert.True(t, syncSvc.IsSyncing())

	result, err := snapshotSvc.DownloadAllData(testContext())
	require.ErrorIs(t, err, ErrSyncInProgress)
	assert.Equal(t, app.MsgSyncInProgress, result.Message)

	gate.release()

	// the download holds the gate while the event list is fetched
	mockAdapter.EXPECT().ListEvents(gomock.Any()).DoAndReturn(
		func(_ context.Context) ([]models.Event, error) {
			res, err := syncSvc.Sync(testContext())
			assert.ErrorIs(t, err, ErrSyncInProgress)
			assert.Equal(t, app.MsgSyncInProgress, res.Message)
			return nil, nil
		},
	)

	result, err = snapshotSvc.DownloadAllData(testContext())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, syncSvc.IsSyncing())
}

func TestClientSnapshotService_EventStats(t *testing.T) {
	svc, _, localStore := newTestSnapshotSvc(t, onlineMonitor())
	ctx := testContext()
	downloadedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, localStore.Snapshots.SaveEventSnapshot(ctx, models.OfflineEvent{
		ID:    "5",
		Event: models.Event{ID: "5", Title: "Go Meetup", Finished: true},
		Participants: []models.Participant{
			{UserID: "1", Status: models.EnrollmentPresent, CheckinTime: checkedInAt(downloadedAt)},
			{UserID: "2", Status: models.EnrollmentPresent, CheckinTime: checkedInAt(downloadedAt)},
			{UserID: "3", Status: models.EnrollmentPending},
			{UserID: "4", Status: models.EnrollmentCancelled},
		},
		DownloadedAt: downloadedAt,
	}))

	stats, err := svc.EventStats(ctx, "5")

	require.NoError(t, err)
	assert.Equal(t, "5", stats.EventID)
	assert.Equal(t, 3, stats.TotalParticipants)
	assert.Equal(t, 2, stats.CheckedIn)
	assert.True(t, stats.CertificatesGenerated)
	assert.True(t, downloadedAt.Equal(stats.DownloadedAt))
}

func TestClientSnapshotService_UnknownEvent(t *testing.T) {
	svc, _, _ := newTestSnapshotSvc(t, onlineMonitor())

	_, err := svc.GetOfflineEvent(testContext(), "404")
	assert.ErrorIs(t, err, store.ErrOfflineEventNotFound)
	assert.NotErrorIs(t, err, ErrStorageFailure)

	_, err = svc.EventStats(testContext(), "404")
	assert.ErrorIs(t, err, store.ErrOfflineEventNotFound)
}

func TestClientSnapshotService_DeleteOfflineEvent(t *testing.T) {
	svc, _, localStore := newTestSnapshotSvc(t, onlineMonitor())
	ctx := testContext()

	require.NoError(t, localStore.Snapshots.SaveEventSnapshot(ctx, models.OfflineEvent{ID: "5", Event: models.Event{ID: "5"}}))
	require.NoError(t, svc.DeleteOfflineEvent(ctx, "5"))

	_, err := svc.GetOfflineEvent(ctx, "5")
	assert.ErrorIs(t, err, store.ErrOfflineEventNotFound)
}
