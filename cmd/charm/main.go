package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/charm/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬ ┬┌─┐┬─┐┌┬┐
  │  ├─┤├─┤├┬┘│││
  └─┘┴ ┴┴ ┴┴└─┴ ┴
`

// globalFlags are shared by every command.
type globalFlags struct {
	dir      string
	config   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "charm",
		Short: "Scoped component tag names for the charm design system",
		Long: `charm computes and inspects the custom element tag names that the
charm design system registers.

Tag names are built from the project prefix, a component's base name and
an optional scope suffix: prefix-name[_suffix]. The project prefix, scope
suffix, components and icon overrides are read from charm.json or
charm.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.dir, "dir", "C", ".", "Project directory")
	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file (default: charm.json or charm.yaml in --dir)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		tagCmd(flags),
		baseNameCmd(flags),
		validateCmd(flags),
		iconsCmd(flags),
		serveCmd(flags),
		versionCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}
