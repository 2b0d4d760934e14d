package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ticket-keeper/internal/app"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/service"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrWrongPassword:       {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	service.ErrTokenIsExpired:      {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrAccessDenied:        {http.StatusForbidden, app.MsgAccessDenied},
	service.ErrEventFinished:       {http.StatusConflict, app.MsgEventFinished},
	service.ErrAlreadyEnrolled:     {http.StatusConflict, app.MsgAlreadyEnrolled},

	store.ErrNoUserWasFound:      {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrEmailAlreadyExists:  {http.StatusConflict, app.MsgEmailAlreadyExists},
	store.ErrEventNotFound:       {http.StatusNotFound, app.MsgEventNotFound},
	store.ErrEnrollmentNotFound:  {http.StatusNotFound, app.MsgEnrollmentNotFound},
	store.ErrTicketNotFound:      {http.StatusNotFound, app.MsgTicketUnknown},
	store.ErrCertificateNotFound: {http.StatusNotFound, app.MsgCertificateNotIssued},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			// validation details help the client fix its request
			if target == service.ErrInvalidDataProvided {
				resp.message = err.Error()
			}
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeServiceError logs err and answers with its mapped status. Internal
// errors are logged at error level, expected ones at warn.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	if resp.status == http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", resp.status).Msg(msg)
	}

	utils.WriteError(w, resp.message, resp.status)
}
