package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-ticket-keeper/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)

		r.Get("/api/events", h.listEvents)
		r.Head("/api/events", h.listEvents)
		r.Get("/api/events/{eventID}", h.getEvent)

		r.Get("/api/certificates/verify/{hash}", h.verifyCertificate)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes for any signed-in user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/enrollments", h.enroll)
		r.Get("/api/enrollments/me", h.myEnrollments)
		r.Get("/api/certificates/me", h.myCertificates)
		r.Get("/api/users/{userID}", h.getUser)
	})

	// staff routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth, requireRole(models.RoleAttendant))

		r.Get("/api/enrollments/events/{eventID}", h.eventEnrollments)
		r.Post("/api/enrollments/events/{eventID}/users/{userID}/presence", h.checkIn)
		r.With(h.hashing).Post("/api/enrollments/events/{eventID}/sync", h.registrationBatch)
		r.Post("/api/events/{eventID}/finish", h.finishEvent)

		r.With(h.hashing).Post("/api/sync/validate-batch", h.validationBatch)
		r.Get("/api/sync/tickets", h.listTickets)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
