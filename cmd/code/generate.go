package code

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/code"
	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/telemetry"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

func newGenerateCommand(opts *codeOpts) *cobra.Command {
	var (
		language string
		context  string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "generate <prompt>...",
		Short: "Generate code from a natural-language prompt.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := generateCode(cmd, opts, strings.Join(args, " "), language, context, output)

			if client, ok := telemetry.FromContext(cmd.Context()); ok {
				_ = client.Track(telemetry.CreateCodeEvent(telemetry.CommandInfo{
					Name:      "generate",
					LocalArgs: map[string]string{"language": language},
				}, err))
			}

			return err
		},
		Example: `devsensei code generate -l python "a fizzbuzz function" -o fizzbuzz.py`,
	}

	cmd.Flags().StringVarP(&language, "language", "l", "python", "Language to generate")
	cmd.Flags().StringVar(&context, "context", "", "Extra context for the generation, e.g. surrounding code")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the generated code to the given path instead of stdout")

	return cmd
}

func generateCode(cmd *cobra.Command, opts *codeOpts, prompt, language, context, output string) error {
	if strings.TrimSpace(prompt) == "" {
		return errors.New("the prompt cannot be blank")
	}

	stop := ui.StartSpinner("Generating code...")
	result, err := opts.client.Generate(code.GenerateRequest{
		Prompt:   prompt,
		Language: language,
		Context:  context,
	})
	stop()
	if err != nil {
		return errors.New(rest.ErrorMessage(err, "could not generate code"))
	}

	if result.Description != "" {
		fmt.Fprintln(cmd.OutOrStdout(), result.Description)
		fmt.Fprintln(cmd.OutOrStdout())
	}

	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), result.Code)
		return nil
	}

	if err := afero.WriteFile(opts.fs, output, []byte(result.Code), 0644); err != nil {
		return errors.Wrap(err, "writing generated code")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Generated %s code written to %s\n", color.GreenString("✓"), result.Language, output)
	return nil
}
