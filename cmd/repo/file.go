package repo

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

func newFileCommand(opts *repoOpts) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "file <username> <repo> <path>",
		Short: "Fetch the content of a file in a repository.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchFile(cmd, opts, args[0], args[1], args[2], output)
		},
		Example: `devsensei repo file octocat Hello-World cmd/main.go`,
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the file content to the given path instead of stdout")

	return cmd
}

func fetchFile(cmd *cobra.Command, opts *repoOpts, username, repo, path, output string) error {
	stop := ui.StartSpinner("Fetching file...")
	file, err := opts.repos.FileContent(username, repo, path)
	stop()
	if err != nil {
		return errors.New(rest.ErrorMessage(err, "could not fetch file content"))
	}

	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), file.Content)
		return nil
	}

	if err := afero.WriteFile(opts.fs, output, []byte(file.Content), 0644); err != nil {
		return errors.Wrap(err, "writing file")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", output, len(file.Content))
	return nil
}
