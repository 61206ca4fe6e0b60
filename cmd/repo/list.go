package repo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/repository"
	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/telemetry"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

func newListCommand(opts *repoOpts) *cobra.Command {
	var jsonFormat bool

	cmd := &cobra.Command{
		Use:   "list <username>",
		Short: "List the repositories of a GitHub user.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := listRepositories(cmd, opts, args[0], jsonFormat)

			if client, ok := telemetry.FromContext(cmd.Context()); ok {
				_ = client.Track(telemetry.CreateRepoEvent(telemetry.CommandInfo{
					Name:      "list",
					LocalArgs: map[string]string{"json": strconv.FormatBool(jsonFormat)},
				}, err))
			}

			return err
		},
		Example: `devsensei repo list octocat`,
	}
	cmd.Flags().BoolVar(&jsonFormat, "json", false, "Return output back in JSON format")

	return cmd
}

func listRepositories(cmd *cobra.Command, opts *repoOpts, username string, jsonFormat bool) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("username cannot be blank")
	}

	stop := ui.StartSpinner("Fetching repositories...")
	repos, err := opts.repos.ListRepositories(username)
	stop()
	if err != nil {
		return errors.New(rest.ErrorMessage(err, "could not list repositories"))
	}

	if jsonFormat {
		out, err := json.Marshal(repos)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	if len(repos) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No repositories found for %s.\n", username)
		return nil
	}

	renderRepositoryTable(cmd, repos)
	return nil
}

func renderRepositoryTable(cmd *cobra.Command, repos []repository.RepositorySummary) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Name", "Language", "Stars", "Forks", "Visibility", "Default Branch"})

	for _, r := range repos {
		visibility := "public"
		if r.Private {
			visibility = "private"
		}
		table.Append([]string{
			r.Name,
			r.Language,
			strconv.Itoa(r.Stars),
			strconv.Itoa(r.Forks),
			visibility,
			r.DefaultBranch,
		})
	}
	table.Render()
}
