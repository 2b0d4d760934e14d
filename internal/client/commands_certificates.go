package client

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (a *App) newCertificatesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "certificates",
		Short: "List the signed-in user's attendance certificates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			certs, err := a.services.CertificateService.MyCertificates(cmd.Context())
			if err != nil {
				return fmt.Errorf("certificates: %w", err)
			}

			return a.output(cmd, opts).print(certs, func(w io.Writer) {
				writeCertificates(w, certs)
			})
		},
	}
}

func (a *App) newVerifyCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <hash>",
		Short: "Verify an attendance certificate by its public hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verification, err := a.services.CertificateService.Verify(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("verify: %w", err)
			}

			return a.output(cmd, opts).print(verification, func(w io.Writer) {
				if !verification.Valid {
					fmt.Fprintf(w, "INVALID  %s\n", verification.Message)
					return
				}
				fmt.Fprintf(w, "VALID  %s\n", verification.Certificate.Hash)
				if verification.ParticipantName != "" {
					fmt.Fprintf(w, "Participant: %s\n", verification.ParticipantName)
				}
				if verification.EventTitle != "" {
					fmt.Fprintf(w, "Event:       %s\n", verification.EventTitle)
				}
				fmt.Fprintf(w, "Issued:      %s\n", formatTimestamp(verification.Certificate.IssuedAt))
			})
		},
	}
}
