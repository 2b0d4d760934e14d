package utils

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	if g.Generate() == id {
		t.Error("expected unique ids")
	}
}

func TestUUIDGenerator_TicketCode(t *testing.T) {
	code := NewUUIDGenerator().TicketCode("TKT-")

	if !regexp.MustCompile(`^TKT-[0-9A-F]{8}$`).MatchString(code) {
		t.Errorf("unexpected ticket code %q", code)
	}
}
