package code

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/telemetry"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

func newReviewCommand(opts *codeOpts) *cobra.Command {
	var (
		language string
		context  string
	)

	cmd := &cobra.Command{
		Use:   "review <file>",
		Short: "Get an AI code review of a snippet.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := reviewFile(cmd, opts, args[0], language, context)

			if client, ok := telemetry.FromContext(cmd.Context()); ok {
				_ = client.Track(telemetry.CreateCodeEvent(telemetry.CommandInfo{
					Name: "review",
				}, err))
			}

			return err
		},
		Example: `devsensei code review handler.go`,
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Language of the snippet (inferred from the file extension when omitted)")
	cmd.Flags().StringVar(&context, "context", "", "Extra context for the reviewer, e.g. what the snippet is for")

	return cmd
}

func reviewFile(cmd *cobra.Command, opts *codeOpts, path, language, context string) error {
	source, language, err := readSource(cmd, opts.fs, path, language)
	if err != nil {
		return err
	}

	stop := ui.StartSpinner("Reviewing...")
	result, err := opts.gemini.CodeReview(source, language, context)
	stop()
	if err != nil {
		return errors.New(rest.ErrorMessage(err, "could not review the snippet"))
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Review)
	return nil
}
