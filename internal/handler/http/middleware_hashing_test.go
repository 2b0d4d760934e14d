package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ticket-keeper/internal/app"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/service"
	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
)

// echoBody answers the request body it received.
var echoBody = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
})

func TestHashing_TableTest(t *testing.T) {
	const payload = `{"validations":[{"code":"TKT-1","timestamp":1000,"status":"valid"}]}`
	hasher := utils.NewHasher(testHashKey)

	tests := []struct {
		name       string
		hashKey    string
		header     string
		wantStatus int
		wantError  string
	}{
		{"valid hash", testHashKey, hasher.SumHex([]byte(payload)), http.StatusOK, ""},
		{"hash of another body", testHashKey, hasher.SumHex([]byte("{}")), http.StatusBadRequest, app.MsgHashMismatch},
		{"not hex", testHashKey, "zz-not-hex", http.StatusBadRequest, app.MsgHashMismatch},
		{"missing header", testHashKey, "", http.StatusBadRequest, app.MsgMissingHash},
		{"no key configured", "", "", http.StatusOK, ""},
		{"signed with another key", testHashKey, utils.HashString(payload, "other"), http.StatusBadRequest, app.MsgHashMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{}, tt.hashKey, logger.Nop())
			req := httptest.NewRequest(http.MethodPost, "/api/sync/validate-batch", strings.NewReader(payload))
			if tt.header != "" {
				req.Header.Set(utils.HashHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			h.hashing(echoBody).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorMessage(t, rec))
				return
			}
			assert.Equal(t, payload, rec.Body.String(), "body is restored for the next handler")
		})
	}
}
