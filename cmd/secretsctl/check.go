package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	cn "github.com/trainboard/lib-secrets-go/constant"
	"github.com/trainboard/lib-secrets-go/validation"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the secrets and print a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load()
			if err != nil {
				opts.logger.Errorf("Failed to load secrets: %v", err)
				return err
			}

			report := validation.Check(s, opts.strict)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if err := enc.Encode(report); err != nil {
				return err
			}

			for _, field := range report.Placeholders {
				if !validation.MustReplace(field) {
					continue
				}

				opts.logger.Warnf("Field %s still holds its committed placeholder", field)
			}

			if !report.Valid {
				return fmt.Errorf("%d invalid field(s): %w", len(report.Issues), cn.ErrInvalidSecrets)
			}

			opts.logger.Infof("Secrets valid [fingerprint: %s]", report.Fingerprint)

			return nil
		},
	}
}
