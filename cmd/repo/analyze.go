package repo

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/mitchellh/mapstructure"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

// repoInfo is the subset of the server's opaque repo_info payload the table
// rendering cares about.
type repoInfo struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Stars       int    `mapstructure:"stars"`
	Forks       int    `mapstructure:"forks"`
	Language    string `mapstructure:"language"`
	UpdatedAt   string `mapstructure:"updated_at"`
}

func newAnalyzeCommand(opts *repoOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <username> <repo>...",
		Short: "Analyze code statistics of one or more repositories.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyzeRepositories(cmd, opts, args[0], args[1:])
		},
		Example: `devsensei repo analyze octocat Hello-World Spoon-Knife`,
	}

	return cmd
}

func analyzeRepositories(cmd *cobra.Command, opts *repoOpts, username string, repos []string) error {
	stop := ui.StartSpinner("Analyzing repositories...")
	analyses, err := opts.repos.Analyze(username, repos)
	stop()
	if err != nil {
		return errors.New(rest.ErrorMessage(err, "could not analyze repositories"))
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Repository", "Language", "Stars", "Files", "Lines", "Languages", "Last Updated"})

	for _, a := range analyses {
		var info repoInfo
		if err := mapstructure.Decode(a.RepoInfo, &info); err != nil {
			return errors.Wrap(err, "decoding repository info")
		}

		table.Append([]string{
			info.Name,
			info.Language,
			strconv.Itoa(info.Stars),
			strconv.Itoa(a.TotalFiles),
			strconv.Itoa(a.TotalLines),
			languageBreakdown(a.Languages),
			lastUpdated(info.UpdatedAt),
		})
	}
	table.Render()

	return nil
}

// languageBreakdown renders a "Go:10 Markdown:2" style summary, most files
// first.
func languageBreakdown(languages map[string]int) string {
	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(languages))
	for name, count := range languages {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s:%d", e.name, e.count))
	}
	return strings.Join(parts, " ")
}

func lastUpdated(raw string) string {
	if raw == "" {
		return ""
	}
	ts, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}
	return ts.Format("2006-01-02")
}
