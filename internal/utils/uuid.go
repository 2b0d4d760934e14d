package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces request trace ids and ticket codes.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, or a random v4 if v7 fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TicketCode returns prefix followed by the first 8 upper-case hex digits of
// a random UUID, e.g. "TKT-3F2A9C1B".
func (g *UUIDGenerator) TicketCode(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(id[:8])
}
