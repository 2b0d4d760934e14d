package client

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ticket-keeper/internal/utils"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// parseAt reads an optional --at value. Empty means now, which the queue
// service fills in.
func (a *App) parseAt(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := utils.ParseServerTime(raw, a.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at value %q: %w", raw, err)
	}
	return t, nil
}

func (a *App) newCheckinCommand(opts *RootOptions) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "checkin <event-id> <user-id>",
		Short: "Queue a participant check-in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			checkinTime, err := a.parseAt(at)
			if err != nil {
				return err
			}

			queued, err := a.services.QueueService.EnqueueCheckin(cmd.Context(), models.PendingCheckin{
				EventID:     args[0],
				UserID:      args[1],
				CheckinTime: checkinTime,
			})
			if err != nil {
				return fmt.Errorf("checkin: %w", err)
			}

			return a.output(cmd, opts).print(queued, func(w io.Writer) {
				fmt.Fprintf(w, "Check-in #%d queued for user %s at %s\n", queued.Seq, queued.UserID, formatTimestamp(queued.CheckinTime))
			})
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "check-in time (2006-01-02 15:04:05 or RFC3339)")

	return cmd
}

func (a *App) newRegisterCommand(opts *RootOptions) *cobra.Command {
	var (
		name  string
		email string
		at    string
	)

	cmd := &cobra.Command{
		Use:   "register <event-id>",
		Short: "Queue an on-site registration of a walk-in attendee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timestamp, err := a.parseAt(at)
			if err != nil {
				return err
			}

			queued, err := a.services.QueueService.EnqueueRegistration(cmd.Context(), models.PendingRegistration{
				Name:      name,
				Email:     email,
				EventID:   args[0],
				Timestamp: timestamp,
			})
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}

			return a.output(cmd, opts).print(queued, func(w io.Writer) {
				fmt.Fprintf(w, "Registration #%d queued for %s <%s>\n", queued.Seq, queued.Name, queued.Email)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "attendee name")
	cmd.Flags().StringVar(&email, "email", "", "attendee email")
	cmd.Flags().StringVar(&at, "at", "", "registration time (2006-01-02 15:04:05 or RFC3339)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *App) newValidateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <ticket-code>",
		Short: "Check a scanned ticket against the local cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := a.services.TicketService.ValidateTicket(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("validate: %w", err)
			}

			return a.output(cmd, opts).print(outcome, func(w io.Writer) {
				verdict := "INVALID"
				if outcome.Valid {
					verdict = "VALID"
				}
				fmt.Fprintf(w, "%s  %s: %s\n", verdict, outcome.Code, outcome.Message)
			})
		},
	}
}

// pendingReport lists every queued operation.
type pendingReport struct {
	Checkins      []models.PendingCheckin      `json:"checkins"`
	Registrations []models.PendingRegistration `json:"registrations"`
	Validations   []models.PendingValidation   `json:"validations"`
}

func (a *App) newPendingCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List operations waiting for the next sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				report pendingReport
				err    error
			)
			if report.Checkins, err = a.services.QueueService.PendingCheckins(ctx); err != nil {
				return err
			}
			if report.Registrations, err = a.services.QueueService.PendingRegistrations(ctx); err != nil {
				return err
			}
			if report.Validations, err = a.services.QueueService.PendingValidations(ctx); err != nil {
				return err
			}

			return a.output(cmd, opts).print(report, func(w io.Writer) {
				fmt.Fprintf(w, "Check-ins (%d):\n", len(report.Checkins))
				for _, c := range report.Checkins {
					fmt.Fprintf(w, "  #%d event %s user %s at %s\n", c.Seq, c.EventID, c.UserID, formatTimestamp(c.CheckinTime))
				}
				fmt.Fprintf(w, "Registrations (%d):\n", len(report.Registrations))
				for _, r := range report.Registrations {
					fmt.Fprintf(w, "  #%d event %s %s <%s>\n", r.Seq, r.EventID, r.Name, r.Email)
				}
				fmt.Fprintf(w, "Validations (%d):\n", len(report.Validations))
				for _, v := range report.Validations {
					fmt.Fprintf(w, "  %s %s at %s\n", v.Code, v.Status, formatTimestamp(v.Timestamp))
				}
			})
		},
	}
}
