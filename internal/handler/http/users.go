package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ticket-keeper/internal/service"
	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// getUser answers a public profile. Clients may only read their own.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requested := chi.URLParam(r, "userID")

	userID, _ := utils.GetUserIDFromContext(ctx)
	role, _ := utils.GetRoleFromContext(ctx)
	if requested != userID && role != models.RoleAttendant {
		writeServiceError(w, r, service.ErrAccessDenied, "profile of another user")
		return
	}

	user, err := h.services.UserService.GetUser(ctx, requested)
	if err != nil {
		writeServiceError(w, r, err, "error getting user")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
