package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// validationBatch applies ticket scans reported by a device. Timestamps are
// Unix milliseconds.
func (h *Handler) validationBatch(w http.ResponseWriter, r *http.Request) {
	var req validationBatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, "Invalid JSON was passed")
		return
	}

	validations := make([]models.PendingValidation, 0, len(req.Validations))
	for _, v := range req.Validations {
		validations = append(validations, models.PendingValidation{
			Code:      v.Code,
			Timestamp: time.UnixMilli(v.Timestamp),
			Status:    v.Status,
		})
	}

	updated, err := h.services.TicketService.ApplyValidations(r.Context(), validations)
	if err != nil {
		writeServiceError(w, r, err, "validation batch failed")
		return
	}

	utils.WriteJSON(w, validationBatchResponse{
		Received: len(validations),
		Updated:  updated,
	}, http.StatusOK)
}

func (h *Handler) listTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.services.TicketService.ListTickets(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error listing tickets")
		return
	}

	utils.WriteJSON(w, tickets, http.StatusOK)
}
