package http

import (
	"net/http"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeServiceError(w, r, err, "Invalid JSON was passed")
		return
	}

	session, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeServiceError(w, r, err, "login failed")
		return
	}

	log.Debug().Str("id", session.UserID).Str("role", string(session.Role)).Msg("user successfully logged in")

	utils.WriteJSON(w, loginResponse{
		Token:  session.Token,
		Role:   session.Role,
		Name:   session.Name,
		Email:  session.Email,
		UserID: session.UserID,
	}, http.StatusOK)
}
