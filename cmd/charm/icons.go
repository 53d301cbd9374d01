package main

import (
	"fmt"
	"sort"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/vango-dev/charm/internal/errors"
)

func iconsCmd(flags *globalFlags) *cobra.Command {
	var (
		match string
		show  string
	)

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "List the icon set",
		Long: `List icon names after applying the configured overrides to the
default set: icon directory, then S3, then inline icons.`,
		Example: `  charm icons --match 'caret-*'
  charm icons --show close > close.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags, false)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if show != "" {
				svg, ok := a.project.Icon(show)
				if !ok {
					return errors.Newf(errors.CategorySource, "icon %q not found", show).
						WithSuggestion("Run 'charm icons' to list available icons")
				}
				fmt.Fprintln(out, svg)
				return nil
			}

			var matcher glob.Glob
			if match != "" {
				if matcher, err = glob.Compile(match); err != nil {
					return errors.Newf(errors.CategoryConfig, "invalid --match pattern %q", match).Wrap(err)
				}
			}

			set := a.project.Get().Icons
			names := make([]string, 0, len(set))
			for name := range set {
				if matcher == nil || matcher.Match(name) {
					names = append(names, name)
				}
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", "Only list names matching this glob")
	cmd.Flags().StringVar(&show, "show", "", "Print the SVG markup of one icon")

	return cmd
}
