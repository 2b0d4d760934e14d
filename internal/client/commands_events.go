package client

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (a *App) newEventsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List events, from the API when online and from snapshots otherwise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			events, err := a.services.EnrollmentService.ListEvents(ctx)
			if err != nil {
				return fmt.Errorf("list events: %w", err)
			}

			return a.output(cmd, opts).print(events, func(w io.Writer) {
				writeEvents(w, events)
			})
		},
	}
}

func (a *App) newEventCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "event <event-id>",
		Short: "Show an offline event snapshot with its participants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := a.services.SnapshotService.GetOfflineEvent(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get offline event: %w", err)
			}

			return a.output(cmd, opts).print(snapshot, func(w io.Writer) {
				fmt.Fprintf(w, "%s\n", snapshot.Event.Title)
				fmt.Fprintf(w, "Starts:      %s\n", formatTimestamp(snapshot.Event.StartsAt))
				fmt.Fprintf(w, "Ends:        %s\n", formatTimestamp(snapshot.Event.EndsAt))
				if snapshot.Event.Location != "" {
					fmt.Fprintf(w, "Location:    %s\n", snapshot.Event.Location)
				}
				fmt.Fprintf(w, "Downloaded:  %s\n", formatTimestamp(snapshot.DownloadedAt))
				fmt.Fprintf(w, "Participants (%d):\n", len(snapshot.Participants))
				writeParticipants(w, snapshot.Participants)
			})
		},
	}
}

func (a *App) newStatsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <event-id>",
		Short: "Summarize attendance of an offline event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.services.SnapshotService.EventStats(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("event stats: %w", err)
			}

			return a.output(cmd, opts).print(stats, func(w io.Writer) {
				fmt.Fprintf(w, "Participants: %d\n", stats.TotalParticipants)
				fmt.Fprintf(w, "Checked in:   %d\n", stats.CheckedIn)
				fmt.Fprintf(w, "Certificates: %s\n", yesNo(stats.CertificatesGenerated))
				fmt.Fprintf(w, "Downloaded:   %s\n", formatTimestamp(stats.DownloadedAt))
			})
		},
	}
}

func (a *App) newDeleteSnapshotCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-snapshot <event-id>",
		Short: "Remove an offline event snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.services.SnapshotService.DeleteOfflineEvent(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete offline event: %w", err)
			}

			return a.output(cmd, opts).print(map[string]string{"deleted": args[0]}, func(w io.Writer) {
				fmt.Fprintf(w, "Snapshot %s deleted\n", args[0])
			})
		},
	}
}

func (a *App) newEnrollCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "enroll <event-id>",
		Short: "Enroll the signed-in user in an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.services.EnrollmentService.Enroll(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("enroll: %w", err)
			}

			return a.output(cmd, opts).print(resp, func(w io.Writer) {
				fmt.Fprintf(w, "Enrolled in %s\n", args[0])
				if resp.TicketCode != "" {
					fmt.Fprintf(w, "Ticket: %s\n", resp.TicketCode)
				}
			})
		},
	}
}

func (a *App) newMyEnrollmentsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "my-enrollments",
		Short: "List the signed-in user's enrollments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enrollments, err := a.services.EnrollmentService.MyEnrollments(cmd.Context())
			if err != nil {
				return fmt.Errorf("my enrollments: %w", err)
			}

			return a.output(cmd, opts).print(enrollments, func(w io.Writer) {
				if len(enrollments) == 0 {
					fmt.Fprintln(w, "No enrollments")
					return
				}
				for _, p := range enrollments {
					fmt.Fprintf(w, "%s  %s\n", p.EventID, p.Status)
				}
			})
		},
	}
}
