package repo

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/slug"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

func newMapCommand(opts *repoOpts) *cobra.Command {
	var (
		branch string
		output string
	)

	cmd := &cobra.Command{
		Use:   "map [owner/repo]",
		Short: "Render the codebase map visualization of a repository.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fullName, err := resolveFullName(args)
			if err != nil {
				return err
			}
			owner, repo, err := slug.Split(fullName)
			if err != nil {
				return err
			}

			stop := ui.StartSpinner("Rendering codebase map...")
			result, err := opts.docs.GenerateCodebaseMap(owner, repo, branch)
			stop()
			if err != nil {
				return errors.New(rest.ErrorMessage(err, "could not render the codebase map"))
			}

			if output == "" {
				output = repo + "-map.png"
			}
			if err := writeCodebaseMap(opts.fs, result, output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Codebase map written to %s\n", color.GreenString("✓"), output)
			return nil
		},
		Example: `devsensei repo map octocat/Hello-World -o map.png`,
	}

	cmd.Flags().StringVar(&branch, "branch", "main", "Branch to visualize")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Path of the image to write (default <repo>-map.png)")

	return cmd
}
