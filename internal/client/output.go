package client

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/models"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var validFormats = []string{formatText, formatJSON}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}

// printer writes one command result either as indented JSON or through the
// text renderer the command supplies.
type printer struct {
	format string
	w      io.Writer
}

func (p printer) print(data any, text func(w io.Writer)) error {
	if p.format == formatJSON {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	text(p.w)
	return nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func writeSyncErrors(w io.Writer, errs []models.SyncError) {
	for _, e := range errs {
		fmt.Fprintf(w, "  ! %s\n", e.String())
	}
}

func writeSyncResult(w io.Writer, r models.SyncResult) {
	fmt.Fprintln(w, r.Message)
	fmt.Fprintf(w, "Check-ins:        %d\n", r.Checkins)
	fmt.Fprintf(w, "Registrations:    %d\n", r.Registrations)
	fmt.Fprintf(w, "Validations:      %d\n", r.Validations)
	fmt.Fprintf(w, "Tickets refreshed: %d\n", r.TicketsRefreshed)
	writeSyncErrors(w, r.Errors)
}

func writeDownloadResult(w io.Writer, r models.DownloadResult) {
	fmt.Fprintln(w, r.Message)
	fmt.Fprintf(w, "Events:       %d\n", r.Events)
	fmt.Fprintf(w, "Participants: %d\n", r.Participants)
	writeSyncErrors(w, r.Errors)
}

func writeEvents(w io.Writer, events []models.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events")
		return
	}
	for _, e := range events {
		state := ""
		if e.Finished {
			state = " (finished)"
		}
		fmt.Fprintf(w, "%s  %s  %s%s\n", e.ID, formatTimestamp(e.StartsAt), e.Title, state)
	}
}

func writeParticipants(w io.Writer, participants []models.Participant) {
	for _, p := range participants {
		mark := " "
		if p.CheckedIn {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %-6s %-24s %-32s %s\n", mark, p.UserID, p.Name, p.Email, p.Status)
	}
}

func writeCertificates(w io.Writer, certs []models.Certificate) {
	if len(certs) == 0 {
		fmt.Fprintln(w, "No certificates")
		return
	}
	for _, c := range certs {
		fmt.Fprintf(w, "%s  event %s  issued %s\n", c.Hash, c.EventID, formatTimestamp(c.IssuedAt))
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
