package repo

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/slug"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

func newAskCommand(opts *repoOpts) *cobra.Command {
	var repoFlag string

	cmd := &cobra.Command{
		Use:   "ask <question>...",
		Short: "Ask a one-shot question about a repository.",
		Long: `Ask a one-shot question about a repository.

The repository comes from --repo, or from the git remotes of the current
working directory. For a longer conversation use 'devsensei chat'.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return errors.New("the question cannot be blank")
			}

			fullName := repoFlag
			if fullName == "" {
				var err error
				if fullName, err = resolveFullName(nil); err != nil {
					return err
				}
			}
			// Validate the name shape before spending a round trip.
			if _, _, err := slug.Split(fullName); err != nil {
				return err
			}

			stop := ui.StartSpinner("Thinking...")
			result, err := opts.docs.ChatWithRepo(fullName, query)
			stop()
			if err != nil {
				return errors.New(rest.ErrorMessage(err, "could not get an answer"))
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Response)
			if len(result.Sources) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\n(answer grounded on %d indexed snippets)\n", len(result.Sources))
			}
			return nil
		},
		Example: `devsensei repo ask --repo octocat/Hello-World "How do I run the tests?"`,
	}

	cmd.Flags().StringVar(&repoFlag, "repo", "", "Repository full name (owner/repo)")

	return cmd
}
