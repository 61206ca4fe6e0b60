package repo

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

func newTreeCommand(opts *repoOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <username> <repo>...",
		Short: "List the files of one or more repositories.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTree(cmd, opts, args[0], args[1:])
		},
		Example: `devsensei repo tree octocat Hello-World`,
	}

	return cmd
}

func showTree(cmd *cobra.Command, opts *repoOpts, username string, repos []string) error {
	stop := ui.StartSpinner("Scraping repositories...")
	structures, err := opts.repos.Scrape(username, repos)
	stop()
	if err != nil {
		return errors.New(rest.ErrorMessage(err, "could not scrape repositories"))
	}

	for _, s := range structures {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d files)\n", s.Name, len(s.Files))

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Path", "Size", "Language"})
		for _, f := range s.Files {
			table.Append([]string{f.Path, strconv.Itoa(f.Size), f.Language})
		}
		table.Render()
	}
	return nil
}
