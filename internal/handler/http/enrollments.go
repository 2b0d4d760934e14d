package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ticket-keeper/internal/app"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/service"
	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

func (h *Handler) eventEnrollments(w http.ResponseWriter, r *http.Request) {
	participants, err := h.services.EnrollmentService.ListByEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		writeServiceError(w, r, err, "error listing event enrollments")
		return
	}

	utils.WriteJSON(w, participants, http.StatusOK)
}

func (h *Handler) myEnrollments(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	participants, err := h.services.EnrollmentService.ListByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "error listing user enrollments")
		return
	}

	utils.WriteJSON(w, participants, http.StatusOK)
}

// enroll enrolls the caller. Staff may enroll someone else by naming the
// user id; clients may only enroll themselves.
func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.EnrollmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, "Invalid JSON was passed")
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	role, _ := utils.GetRoleFromContext(ctx)
	switch {
	case req.UserID == "":
		req.UserID = userID
	case req.UserID != userID && role != models.RoleAttendant:
		writeServiceError(w, r, service.ErrAccessDenied, "enrollment for another user")
		return
	}

	resp, err := h.services.EnrollmentService.Enroll(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "enrollment failed")
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) checkIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req checkinRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, "Invalid JSON was passed")
		return
	}
	at, err := parseOptionalTime(req.CheckinTime, h.location)
	if err != nil {
		writeServiceError(w, r, err, "invalid checkin_time")
		return
	}

	eventID, userID := chi.URLParam(r, "eventID"), chi.URLParam(r, "userID")
	participant, err := h.services.EnrollmentService.CheckIn(ctx, eventID, userID, at)
	if err != nil {
		writeServiceError(w, r, err, "check-in failed")
		return
	}

	log.Debug().Str("event_id", eventID).Str("user_id", userID).Msg("check-in applied")
	utils.WriteJSON(w, participant, http.StatusOK)
}

func (h *Handler) registrationBatch(w http.ResponseWriter, r *http.Request) {
	var req registrationBatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, "Invalid JSON was passed")
		return
	}

	eventID := chi.URLParam(r, "eventID")
	registrations := make([]models.PendingRegistration, 0, len(req.Users))
	for _, u := range req.Users {
		at, err := parseOptionalTime(u.CheckinTime, h.location)
		if err != nil {
			writeServiceError(w, r, err, "invalid checkin_time")
			return
		}
		registrations = append(registrations, models.PendingRegistration{
			Name:      u.Name,
			Email:     u.Email,
			EventID:   eventID,
			Timestamp: at,
		})
	}

	participants, err := h.services.EnrollmentService.RegisterPresential(r.Context(), eventID, registrations)
	if err != nil {
		writeServiceError(w, r, err, "registration batch failed")
		return
	}

	utils.WriteJSON(w, registrationBatchResponse{
		Registered:   len(participants),
		Participants: participants,
	}, http.StatusOK)
}
