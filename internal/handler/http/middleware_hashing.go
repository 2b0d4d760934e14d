package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-ticket-keeper/internal/app"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
)

// maxBatchBodySize bounds the bodies read for hashing.
const maxBatchBodySize = 4 << 20

// hashing verifies the HMAC-SHA256 of the raw request body against the
// utils.HashHeader value. Without a configured hash key it passes requests
// through unchanged.
func (h *Handler) hashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Msg("checking hash begins")

		received := r.Header.Get(utils.HashHeader)
		if received == "" {
			log.Error().Msg("request without body hash")
			utils.WriteError(w, app.MsgMissingHash, http.StatusBadRequest)
			return
		}

		// read bytes from body
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBatchBodySize))
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, received) {
			log.Error().
				Str("hash from request", received).
				Str("hashed body", h.hasher.SumHex(body)).
				Msg("hashes are not equal")
			utils.WriteError(w, app.MsgHashMismatch, http.StatusBadRequest)
			return
		}

		log.Debug().Str("hash from request", received).Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
