package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ticket-keeper/internal/app"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/service"
	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

func newAuthHandler(parse func(ctx context.Context, tokenString string) (models.Token, error)) *Handler {
	return NewHandler(&service.Services{AuthService: &mockAuthService{parseTokenFn: parse}}, "", logger.Nop())
}

// identityHandler echoes the identity stored by auth.
func identityHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		role, _ := utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(userID + ":" + string(role)))
	})
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	validParse := func(_ context.Context, tokenString string) (models.Token, error) {
		if tokenString != "good" {
			return models.Token{}, service.ErrTokenIsExpired
		}
		return models.Token{UserID: "7", Role: models.RoleAttendant}, nil
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
		wantError  string
	}{
		{"no header", "", http.StatusUnauthorized, "", ErrEmptyAuthorizationHeader.Error()},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "", ErrInvalidAuthorizationHeader.Error()},
		{"bearer without token", "Bearer", http.StatusUnauthorized, "", ErrInvalidAuthorizationHeader.Error()},
		{"expired token", "Bearer stale", http.StatusUnauthorized, "", app.MsgTokenIsExpiredOrInvalid},
		{"valid token", "Bearer good", http.StatusOK, "7:attendant", ""},
		{"scheme is case-insensitive", "bearer good", http.StatusOK, "7:attendant", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler(validParse)
			req := httptest.NewRequest(http.MethodGet, "/api/enrollments/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(identityHandler(t)).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorMessage(t, rec))
				return
			}
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newAuthHandler(func(context.Context, string) (models.Token, error) {
		return models.Token{UserID: "1", Role: models.RoleClient}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	h.auth(identityHandler(t)).ServeHTTP(httptest.NewRecorder(), req)

	_, ok := utils.GetUserIDFromContext(req.Context())
	assert.False(t, ok)
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newAuthHandler(func(_ context.Context, tokenString string) (models.Token, error) {
		return models.Token{UserID: tokenString, Role: models.RoleClient}, nil
	})
	next := h.auth(identityHandler(t))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := string(rune('a' + i))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+userID)
			rec := httptest.NewRecorder()

			next.ServeHTTP(rec, req)

			assert.Equal(t, userID+":client", rec.Body.String())
		}(i)
	}
	wg.Wait()
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	mw := requireRole(models.RoleAttendant)(next)

	tests := []struct {
		name       string
		ctx        context.Context
		wantStatus int
	}{
		{"attendant", utils.WithUser(context.Background(), "1", models.RoleAttendant), http.StatusNoContent},
		{"client", utils.WithUser(context.Background(), "2", models.RoleClient), http.StatusForbidden},
		{"no identity", context.Background(), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(tt.ctx)
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
