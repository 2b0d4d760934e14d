package client

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ticket-keeper/internal/connectivity"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

func (a *App) newLoginCommand(opts *RootOptions) *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.services.AuthService.Login(cmd.Context(), creds)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			return a.output(cmd, opts).print(session, func(w io.Writer) {
				fmt.Fprintf(w, "Signed in as %s <%s> (%s)\n", session.Name, session.Email, session.Role)
			})
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *App) newLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session stored on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.services.AuthService.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("logout: %w", err)
			}

			return a.output(cmd, opts).print(map[string]bool{"signed_out": true}, func(w io.Writer) {
				fmt.Fprintln(w, "Signed out")
			})
		},
	}
}

// statusReport is the status command payload.
type statusReport struct {
	Online        bool                 `json:"online"`
	SignedIn      bool                 `json:"signed_in"`
	Session       *models.Session      `json:"session,omitempty"`
	Syncing       bool                 `json:"syncing"`
	LastSync      time.Time            `json:"last_sync"`
	Pending       models.PendingCounts `json:"pending"`
	Tickets       int                  `json:"tickets"`
	OfflineEvents int                  `json:"offline_events"`
}

func (a *App) newStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show connectivity, session and queue state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			report := statusReport{
				Online:  a.state == connectivity.Online,
				Syncing: a.services.SyncService.IsSyncing(),
			}
			if session, ok := a.services.AuthService.Current(); ok {
				report.SignedIn = true
				report.Session = &session
			}

			var err error
			if report.LastSync, err = a.services.SyncService.LastSyncTime(ctx); err != nil {
				return err
			}
			if report.Pending, err = a.services.QueueService.PendingCounts(ctx); err != nil {
				return err
			}
			if report.Tickets, err = a.services.TicketService.CountTickets(ctx); err != nil {
				return err
			}
			snapshots, err := a.services.SnapshotService.GetAllOfflineEvents(ctx)
			if err != nil {
				return err
			}
			report.OfflineEvents = len(snapshots)

			return a.output(cmd, opts).print(report, func(w io.Writer) {
				state := connectivity.Offline
				if report.Online {
					state = connectivity.Online
				}
				fmt.Fprintf(w, "Connectivity:   %s\n", strings.ToUpper(state.String()))
				if report.SignedIn {
					fmt.Fprintf(w, "Signed in:      %s <%s> (%s)\n", report.Session.Name, report.Session.Email, report.Session.Role)
				} else {
					fmt.Fprintln(w, "Signed in:      no")
				}
				fmt.Fprintf(w, "Syncing:        %s\n", yesNo(report.Syncing))
				fmt.Fprintf(w, "Last sync:      %s\n", formatTimestamp(report.LastSync))
				fmt.Fprintf(w, "Pending:        %d check-ins, %d registrations, %d validations\n",
					report.Pending.Checkins, report.Pending.Registrations, report.Pending.Validations)
				fmt.Fprintf(w, "Cached tickets: %d\n", report.Tickets)
				fmt.Fprintf(w, "Offline events: %d\n", report.OfflineEvents)
			})
		},
	}
}

func (a *App) newVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := map[string]string{
				"version": a.buildInfo.BuildVersion(),
				"date":    a.buildInfo.BuildDate(),
				"commit":  a.buildInfo.BuildCommit(),
			}

			return a.output(cmd, opts).print(info, func(w io.Writer) {
				fmt.Fprintf(w, "Build version: %s\n", info["version"])
				fmt.Fprintf(w, "Build date: %s\n", info["date"])
				fmt.Fprintf(w, "Build commit: %s\n", info["commit"])
			})
		},
	}
}
