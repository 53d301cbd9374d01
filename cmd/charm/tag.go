package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/charm/pkg/scope"
)

func tagCmd(flags *globalFlags) *cobra.Command {
	var suffix string

	cmd := &cobra.Command{
		Use:   "tag <base-name>...",
		Short: "Print the scoped tag name for base names",
		Long: `Print the tag name each base name is registered under.

With no arguments, prints the tag of every component listed in the
configuration.`,
		Example: `  charm tag button dialog
  charm tag --suffix app2 button`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags, false)
			if err != nil {
				return err
			}

			var opts []scope.Option
			if cmd.Flags().Changed("suffix") {
				opts = append(opts, scope.WithSuffix(suffix))
			}
			s, err := a.newScope(opts...)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = a.cfg.Components
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), s.TagName(name))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&suffix, "suffix", "s", "", "Scope suffix (overrides the configuration)")

	return cmd
}

func baseNameCmd(flags *globalFlags) *cobra.Command {
	var suffixes []string

	cmd := &cobra.Command{
		Use:     "basename <tag>...",
		Short:   "Recover base names from tag names",
		Example: `  charm basename ch-button_app1 --known-suffix app1`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags, false)
			if err != nil {
				return err
			}
			s, err := a.newScope()
			if err != nil {
				return err
			}
			// Pass through each extra suffix so the scope strips it too.
			for _, suffix := range suffixes {
				if err := s.UpdateOptions(scope.WithSuffix(suffix)); err != nil {
					return err
				}
			}
			if err := s.UpdateOptions(scope.WithSuffix(a.cfg.Suffix)); err != nil {
				return err
			}

			for _, tag := range args {
				fmt.Fprintln(cmd.OutOrStdout(), s.BaseName(tag))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&suffixes, "known-suffix", nil, "Additional suffixes to strip")

	return cmd
}
