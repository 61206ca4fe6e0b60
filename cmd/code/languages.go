package code

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
)

func newLanguagesCommand(opts *codeOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages the sandbox can run.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := opts.client.SupportedLanguages()
			if err != nil {
				return errors.New(rest.ErrorMessage(err, "could not list supported languages"))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Languages: %s\n", strings.Join(result.Languages, ", "))
			if len(result.FrontendFrameworks) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Frontend frameworks: %s\n", strings.Join(result.FrontendFrameworks, ", "))
			}
			return nil
		},
	}
}
