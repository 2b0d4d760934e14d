package client

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (a *App) newSyncCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push queued check-ins, registrations and validations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			result, err := a.services.SyncService.Sync(ctx)
			if perr := a.output(cmd, opts).print(result, func(w io.Writer) {
				if !result.Success {
					fmt.Fprintln(w, result.Message)
					writeSyncErrors(w, result.Errors)
					return
				}
				writeSyncResult(w, result)
			}); perr != nil {
				return perr
			}

			if err != nil {
				return fmt.Errorf("sync: %w", err)
			}
			return nil
		},
	}
}

func (a *App) newDownloadCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Replace every offline event snapshot with a fresh copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			result, err := a.services.SnapshotService.DownloadAllData(ctx)
			if perr := a.output(cmd, opts).print(result, func(w io.Writer) {
				if err != nil {
					fmt.Fprintln(w, result.Message)
					writeSyncErrors(w, result.Errors)
					return
				}
				writeDownloadResult(w, result)
			}); perr != nil {
				return perr
			}

			if err != nil {
				return fmt.Errorf("download: %w", err)
			}
			return nil
		},
	}
}

func (a *App) newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Open the live status view with background sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context())
		},
	}
}
