package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func validateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the project configuration",
		Long: `Load the configuration, read every icon source and register the
configured components, reporting the first problem found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags, true)
			if err != nil {
				return err
			}
			s, err := a.newScope()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			success(out, "%s is valid", displayPath(a.cfg.Path()))
			fmt.Fprintln(out)
			field(out, "Prefix", s.Prefix())
			field(out, "Suffix", orNone(s.Suffix()))
			field(out, "Base path", orNone(s.BasePath()))
			field(out, "Icons", fmt.Sprintf("%d", len(a.project.Get().Icons)))
			field(out, "Tags", tagStyle.Render(strings.Join(a.registry.Tags(), " ")))

			if len(a.cfg.Components) == 0 {
				fmt.Fprintln(out)
				warn(out, "no components configured")
			}
			return nil
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
