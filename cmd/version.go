package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information.",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s+%s\n", version.Version, version.Commit)
		},
	}
}
