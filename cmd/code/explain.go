package code

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

func newExplainCommand(opts *codeOpts) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "explain <file>",
		Short: "Explain what a snippet does in plain language.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, language, err := readSource(cmd, opts.fs, args[0], language)
			if err != nil {
				return err
			}

			stop := ui.StartSpinner("Explaining...")
			result, err := opts.client.Explain(source, language)
			stop()
			if err != nil {
				return errors.New(rest.ErrorMessage(err, "could not explain the snippet"))
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Explanation)
			return nil
		},
		Example: `devsensei code explain mystery.py`,
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Language of the snippet (inferred from the file extension when omitted)")

	return cmd
}
