package http

import (
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/service"
	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher is nil when no hash key is configured; batch bodies are then
	// accepted without the integrity header.
	hasher *utils.Hasher
	// location interprets wall-clock check-in times sent by clients.
	location *time.Location
	// ids generates request trace ids.
	ids *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hasher:   utils.NewHasher(hashKey),
		location: time.Local,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// WithLocation sets the zone used to read client wall-clock times. A nil loc
// keeps the current one.
func (h *Handler) WithLocation(loc *time.Location) *Handler {
	if loc != nil {
		h.location = loc
	}
	return h
}
