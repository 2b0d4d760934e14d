package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
)

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.services.EventService.ListEvents(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error listing events")
		return
	}

	utils.WriteJSON(w, events, http.StatusOK)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.services.EventService.GetEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		writeServiceError(w, r, err, "error getting event")
		return
	}

	utils.WriteJSON(w, event, http.StatusOK)
}

// finishEvent closes the event and answers the issued certificates.
func (h *Handler) finishEvent(w http.ResponseWriter, r *http.Request) {
	certificates, err := h.services.EventService.FinishEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		writeServiceError(w, r, err, "error finishing event")
		return
	}

	utils.WriteJSON(w, certificates, http.StatusOK)
}
