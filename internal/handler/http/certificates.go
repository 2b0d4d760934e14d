package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ticket-keeper/internal/app"
	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
)

func (h *Handler) myCertificates(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	certificates, err := h.services.CertificateService.ListByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "error listing certificates")
		return
	}

	utils.WriteJSON(w, certificates, http.StatusOK)
}

func (h *Handler) verifyCertificate(w http.ResponseWriter, r *http.Request) {
	certificate, err := h.services.CertificateService.GetByHash(r.Context(), chi.URLParam(r, "hash"))
	if err != nil {
		writeServiceError(w, r, err, "certificate verification failed")
		return
	}

	utils.WriteJSON(w, certificate, http.StatusOK)
}
