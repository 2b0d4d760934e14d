package models

// TicketStatus is the admission state of a ticket.
type TicketStatus string

const (
	TicketValid   TicketStatus = "valid"
	TicketUsed    TicketStatus = "used"
	TicketInvalid TicketStatus = "invalid"
)

// Ticket is an admission credential identified by its scannable code.
type Ticket struct {
	Code       string       `json:"code"`
	EventID    string       `json:"event_id,omitempty"`
	Status     TicketStatus `json:"status"`
	HolderName string       `json:"holder_name,omitempty"`
}

// ValidationOutcome is what the attendant sees after scanning a code.
type ValidationOutcome struct {
	Code    string       `json:"code"`
	Valid   bool         `json:"valid"`
	Status  TicketStatus `json:"status,omitempty"`
	Message string       `json:"message"`
	Ticket  *Ticket      `json:"ticket,omitempty"`
}
