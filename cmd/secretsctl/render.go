package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/trainboard/lib-secrets-go/render"
	"github.com/trainboard/lib-secrets-go/validation"
)

const (
	formatHeader  = "header"
	formatLDFlags = "ldflags"
)

type renderOptions struct {
	out     string
	format  string
	pkgPath string
	force   bool
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	ro := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the secrets as a firmware header or Go linker flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load()
			if err != nil {
				opts.logger.Errorf("Failed to load secrets: %v", err)
				return err
			}

			if err := validation.Validate(s, opts.strict); err != nil && !ro.force {
				opts.logger.Errorf("Refusing to render invalid secrets, use --force to override")
				return err
			}

			var out []byte

			switch ro.format {
			case formatHeader:
				out, err = render.Header(s)
			case formatLDFlags:
				var flags string
				flags, err = render.LDFlags(ro.pkgPath, s)
				out = []byte(flags + "\n")
			default:
				err = fmt.Errorf("unknown format %q, want %s or %s", ro.format, formatHeader, formatLDFlags)
			}

			if err != nil {
				return err
			}

			return ro.write(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&ro.out, "out", "o", "", "output file, defaults to stdout")
	cmd.Flags().StringVar(&ro.format, "format", formatHeader, "output format: header or ldflags")
	cmd.Flags().StringVar(&ro.pkgPath, "pkg", "main", "Go package path for ldflags")
	cmd.Flags().BoolVar(&ro.force, "force", false, "render even when validation fails")

	return cmd
}

// write keeps rendered secrets readable by the owner only.
func (ro *renderOptions) write(stdout io.Writer, data []byte) error {
	if ro.out == "" {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(ro.out, data, 0o600)
}
