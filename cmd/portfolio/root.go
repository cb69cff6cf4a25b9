package main

import (
	"github.com/spf13/cobra"

	"krushnagate.dev/portfolio/internal/config"
)

type rootFlags struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Single-page developer portfolio server",
		Long: `portfolio serves a single-page developer portfolio with in-page
navigation, a collapsible mobile menu and a contact form.

Run "portfolio serve" to start the HTTP server, "portfolio export" to write a
static copy of the page, or "portfolio check" to verify navigation anchors.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML config file")

	serve := newServeCmd(flags)
	root.AddCommand(serve, newExportCmd(flags), newCheckCmd(flags))
	// bare "portfolio" behaves like "portfolio serve"
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	return root
}

// loadConfig reads the config file named by --config and binds any of the
// given command-line flags that map to config keys.
func loadConfig(cmd *cobra.Command, flags *rootFlags, bindings map[string]string) (*config.Config, error) {
	l := config.NewLoader()
	for key, name := range bindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := l.BindFlag(key, f); err != nil {
				return nil, err
			}
		}
	}
	return l.LoadConfig(flags.configPath)
}
