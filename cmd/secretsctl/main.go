// Command secretsctl checks firmware secrets, renders them into build inputs
// and serves them to build machines.
package main

import (
	"os"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	"github.com/spf13/cobra"
	sdk "github.com/trainboard/lib-secrets-go"
	cn "github.com/trainboard/lib-secrets-go/constant"
	"github.com/trainboard/lib-secrets-go/pkg"
)

type rootOptions struct {
	file   string
	strict bool
	logger log.Logger
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. A nil logger selects the zap logger.
func newRootCmd(logger log.Logger) *cobra.Command {
	opts := &rootOptions{logger: logger}

	cmd := &cobra.Command{
		Use:          "secretsctl",
		Short:        "Check, render and serve speech firmware secrets",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.logger == nil {
				opts.logger = zap.InitializeLogger()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", os.Getenv(cn.EnvSecretsFile),
		"secrets file (.env or .yaml), defaults to the environment")
	cmd.PersistentFlags().BoolVar(&opts.strict, "strict", pkg.IsTrue(os.Getenv(cn.EnvStrict)),
		"reject committed placeholder values")

	cmd.AddCommand(newCheckCmd(opts), newRenderCmd(opts), newServeCmd(opts))

	return cmd
}

func (o *rootOptions) load() (sdk.Config, error) {
	if o.file != "" {
		return sdk.LoadFromFile(o.file)
	}

	return sdk.LoadFromEnv()
}
