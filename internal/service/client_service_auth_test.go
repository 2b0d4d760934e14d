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
	"github.com/MKhiriev/go-ticket-keeper/internal/session"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/internal/validators"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// ── auth ─────────────────────────────────────────────────────────────────────

func newTestAuthSvc(t *testing.T) (*clientAuthService, *mock.MockServerAdapter, *session.Holder, *store.ClientStorages) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	holder := session.NewHolder()
	localStore := newTestLocalStore(t)

	svc := NewClientAuthService(localStore, mockAdapter, holder, validators.NewQueueValidator(), logger.Nop()).(*clientAuthService)
	return svc, mockAdapter, holder, localStore
}

func TestClientAuthService_Login_StartsAndPersistsSession(t *testing.T) {
	svc, mockAdapter, holder, localStore := newTestAuthSvc(t)
	ctx := testContext()
	now := time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	creds := models.Credentials{Email: "attendant@test.com", Password: "password"}
	mockAdapter.EXPECT().Login(gomock.Any(), creds).Return(models.Session{
		UserID: "1", Name: "Attendant", Role: models.RoleAttendant, Token: "jwt-token",
	}, nil)

	s, err := svc.Login(ctx, models.Credentials{Email: " attendant@test.com ", Password: "password"})
	require.NoError(t, err)
	assert.Equal(t, "1", s.UserID)
	assert.Equal(t, "attendant@test.com", s.Email)
	assert.True(t, now.Equal(s.CreatedAt))

	current, ok := holder.Current()
	require.True(t, ok)
	assert.Equal(t, "jwt-token", current.Token)

	persisted, err := localStore.Sessions.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", persisted.UserID)
	assert.Equal(t, "jwt-token", persisted.Token)
}

func TestClientAuthService_Login_Rejected(t *testing.T) {
	svc, mockAdapter, holder, localStore := newTestAuthSvc(t)
	ctx := testContext()

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Session{}, fmt.Errorf("login: %w", adapter.ErrUnauthorized))

	_, err := svc.Login(ctx, models.Credentials{Email: "client@test.com", Password: "wrong"})
	require.ErrorIs(t, err, adapter.ErrUnauthorized)

	_, ok := holder.Current()
	assert.False(t, ok)
	_, err = localStore.Sessions.GetSession(ctx)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestClientAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _, _, _ := newTestAuthSvc(t)

	_, err := svc.Login(testContext(), models.Credentials{Email: "nope", Password: "password"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)

	_, err = svc.Login(testContext(), models.Credentials{Email: "client@test.com"})
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)
}

func TestClientAuthService_RestoreAndLogout(t *testing.T) {
	svc, _, holder, localStore := newTestAuthSvc(t)
	ctx := testContext()

	_, err := svc.RestoreSession(ctx)
	require.ErrorIs(t, err, ErrNotSignedIn)

	require.NoError(t, localStore.Sessions.SaveSession(ctx, models.Session{
		UserID: "2", Email: "client@test.com", Role: models.RoleClient, Token: "saved", CreatedAt: time.UnixMilli(1000),
	}))

	restored, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", restored.UserID)
	assert.Equal(t, "saved", holder.Token())

	require.NoError(t, svc.Logout(ctx))
	assert.Empty(t, holder.Token())
	_, ok := svc.Current()
	assert.False(t, ok)

	_, err = localStore.Sessions.GetSession(ctx)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestClientAuthService_Login_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)
	holder := session.NewHolder()

	svc := NewClientAuthService(&store.ClientStorages{Sessions: mockSessions}, mockAdapter, holder, validators.NewQueueValidator(), logger.Nop())

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Session{UserID: "1", Token: "t"}, nil)
	mockSessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Login(testContext(), models.Credentials{Email: "a@x.com", Password: "p"})
	require.ErrorIs(t, err, ErrStorageFailure)

	_, ok := holder.Current()
	assert.False(t, ok, "session is not started when it cannot be persisted")
}

// ── certificates ─────────────────────────────────────────────────────────────

func TestClientCertificateService_Verify_Enriched(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientCertificateService(mockAdapter, logger.Nop())

	cert := models.Certificate{EventID: "5", UserID: "9", Hash: "abc123", IssuedAt: time.UnixMilli(1000)}
	mockAdapter.EXPECT().VerifyCertificate(gomock.Any(), "abc123").Return(cert, nil)
	mockAdapter.EXPECT().GetEvent(gomock.Any(), "5").Return(models.Event{ID: "5", Title: "Go Meetup"}, nil)
	mockAdapter.EXPECT().GetUser(gomock.Any(), "9").Return(models.User{ID: "9", Name: "Ana"}, nil)

	v, err := svc.Verify(testContext(), " abc123 ")

	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, app.MsgCertificateValid, v.Message)
	assert.Equal(t, "Go Meetup", v.EventTitle)
	assert.Equal(t, "Ana", v.ParticipantName)
	require.NotNil(t, v.Certificate)
	assert.Equal(t, "abc123", v.Certificate.Hash)
}

func TestClientCertificateService_Verify_LookupFailuresAreIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientCertificateService(mockAdapter, logger.Nop())

	mockAdapter.EXPECT().VerifyCertificate(gomock.Any(), "abc123").Return(models.Certificate{EventID: "5", UserID: "9", Hash: "abc123"}, nil)
	mockAdapter.EXPECT().GetEvent(gomock.Any(), "5").Return(models.Event{}, adapter.ErrNotFound)
	mockAdapter.EXPECT().GetUser(gomock.Any(), "9").Return(models.User{}, adapter.ErrForbidden)

	v, err := svc.Verify(testContext(), "abc123")

	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Empty(t, v.EventTitle)
	assert.Empty(t, v.ParticipantName)
}

func TestClientCertificateService_Verify_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientCertificateService(mockAdapter, logger.Nop())

	mockAdapter.EXPECT().VerifyCertificate(gomock.Any(), "missing").Return(models.Certificate{}, fmt.Errorf("verify: %w", adapter.ErrNotFound))

	v, err := svc.Verify(testContext(), "missing")

	require.NoError(t, err)
	assert.False(t, v.Valid)
	assert.Equal(t, app.MsgCertificateNotFound, v.Message)

	_, err = svc.Verify(testContext(), "")
	assert.ErrorIs(t, err, validators.ErrEmptyCertificateID)
}

func TestClientCertificateService_MyCertificates_NetworkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientCertificateService(mockAdapter, logger.Nop())

	mockAdapter.EXPECT().GetMyCertificates(gomock.Any()).Return(nil, fmt.Errorf("certificates: %w", adapter.ErrNetwork))

	_, err := svc.MyCertificates(testContext())
	assert.ErrorIs(t, err, ErrNetworkFailure)
}

// ── enrollments ──────────────────────────────────────────────────────────────

func TestClientEnrollmentService_ListEvents_OnlineAndOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	localStore := newTestLocalStore(t)
	monitor := onlineMonitor()
	ctx := testContext()

	require.NoError(t, localStore.Snapshots.SaveEventSnapshot(ctx, models.OfflineEvent{
		ID: "5", Event: models.Event{ID: "5", Title: "Cached"},
	}))

	svc := NewClientEnrollmentService(localStore, mockAdapter, monitor, session.NewHolder(), validators.NewQueueValidator(), logger.Nop())

	mockAdapter.EXPECT().ListEvents(gomock.Any()).Return([]models.Event{{ID: "5", Title: "Live"}, {ID: "6", Title: "New"}}, nil)
	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	mockAdapter.EXPECT().ListEvents(gomock.Any()).Return(nil, fmt.Errorf("list: %w", adapter.ErrNetwork))
	events, err = svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Cached", events[0].Title)

	monitor.SetOnline(false)
	events, err = svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)

	monitor.SetOnline(true)
	mockAdapter.EXPECT().ListEvents(gomock.Any()).Return(nil, adapter.ErrInternalServerError)
	_, err = svc.ListEvents(ctx)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestClientEnrollmentService_Enroll(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	holder := session.NewHolder()
	svc := NewClientEnrollmentService(&store.ClientStorages{}, mockAdapter, onlineMonitor(), holder, validators.NewQueueValidator(), logger.Nop())

	_, err := svc.Enroll(testContext(), "5")
	require.ErrorIs(t, err, ErrNotSignedIn)

	holder.Start(models.Session{UserID: "9", Token: "jwt"})
	mockAdapter.EXPECT().Enroll(gomock.Any(), models.EnrollmentRequest{UserID: "9", EventID: "5", Source: models.SourceWeb}).
		Return(models.EnrollmentResponse{Success: true, TicketCode: "TKT-ABCD1234"}, nil)

	resp, err := svc.Enroll(testContext(), " 5 ")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "TKT-ABCD1234", resp.TicketCode)

	_, err = svc.Enroll(testContext(), "")
	assert.ErrorIs(t, err, validators.ErrInvalidEventID)
}

func TestClientEnrollmentService_MyEnrollments(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientEnrollmentService(&store.ClientStorages{}, mockAdapter, onlineMonitor(), session.NewHolder(), validators.NewQueueValidator(), logger.Nop())

	mockAdapter.EXPECT().GetMyEnrollments(gomock.Any()).DoAndReturn(func(_ context.Context) ([]models.Participant, error) {
		return []models.Participant{{UserID: "9", EventID: "5", Status: models.EnrollmentPending}}, nil
	})

	got, err := svc.MyEnrollments(testContext())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestClientEnrollmentService_MyEnrollments_PartialResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientEnrollmentService(&store.ClientStorages{}, mockAdapter, onlineMonitor(), session.NewHolder(), validators.NewQueueValidator(), logger.Nop())

	mockAdapter.EXPECT().GetMyEnrollments(gomock.Any()).Return(
		[]models.Participant{{UserID: "9", EventID: "5", Status: models.EnrollmentPending}},
		fmt.Errorf("get my enrollments: %w: enrollment without user_id", adapter.ErrPartialResponse),
	)

	got, err := svc.MyEnrollments(testContext())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "5", got[0].EventID)
}
