package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string
}

func (a *App) newRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ticket-keeper",
		Short: "Offline-first event check-in client",
		Long: `Check attendees in, register walk-ins and validate tickets without a network
connection. Queued operations are pushed to the event API on the next sync.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", formatText, "output format (json|text)")

	cmd.AddCommand(
		a.newLoginCommand(opts),
		a.newLogoutCommand(opts),
		a.newStatusCommand(opts),
		a.newVersionCommand(opts),
		a.newSyncCommand(opts),
		a.newDownloadCommand(opts),
		a.newWatchCommand(),
		a.newEventsCommand(opts),
		a.newEventCommand(opts),
		a.newStatsCommand(opts),
		a.newDeleteSnapshotCommand(opts),
		a.newCheckinCommand(opts),
		a.newRegisterCommand(opts),
		a.newValidateCommand(opts),
		a.newPendingCommand(opts),
		a.newCertificatesCommand(opts),
		a.newVerifyCommand(opts),
		a.newEnrollCommand(opts),
		a.newMyEnrollmentsCommand(opts),
	)

	return cmd
}

func (a *App) output(cmd *cobra.Command, opts *RootOptions) printer {
	return printer{format: opts.Format, w: cmd.OutOrStdout()}
}
