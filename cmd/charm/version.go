package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version, commit, and build information for the charm CLI.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version)
				return
			}

			fmt.Fprint(out, bannerStyle.Render(banner))
			fmt.Fprintln(out)
			field(out, "Version:", version)
			field(out, "Commit:", commit)
			field(out, "Built:", date)
			field(out, "Go version:", runtime.Version())
			field(out, "OS/Arch:", runtime.GOOS+"/"+runtime.GOARCH)
			fmt.Fprintln(out)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}
