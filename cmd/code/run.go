package code

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/code"
	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/telemetry"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

func newRunCommand(opts *codeOpts) *cobra.Command {
	var (
		language string
		input    string
	)

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Execute a code snippet in the sandbox.",
		Long: `Execute a code snippet in the sandbox.

Pass '-' as the file to read the snippet from stdin; in that case --language
is required.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSnippet(cmd, opts, args[0], language, input)

			if client, ok := telemetry.FromContext(cmd.Context()); ok {
				_ = client.Track(telemetry.CreateCodeEvent(telemetry.CommandInfo{
					Name:      "run",
					LocalArgs: map[string]string{"language": language},
				}, err))
			}

			return err
		},
		Example: `devsensei code run fib.py --input "10"`,
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Language of the snippet (inferred from the file extension when omitted)")
	cmd.Flags().StringVar(&input, "input", "", "Data passed to the program on stdin")

	return cmd
}

func runSnippet(cmd *cobra.Command, opts *codeOpts, path, language, input string) error {
	source, language, err := readSource(cmd, opts.fs, path, language)
	if err != nil {
		return err
	}

	stop := ui.StartSpinner("Running...")
	result, err := opts.client.Execute(source, language, input)
	stop()
	if err != nil {
		return errors.New(rest.ErrorMessage(err, "could not execute the snippet"))
	}

	return renderExecutionResult(cmd, result)
}

func renderExecutionResult(cmd *cobra.Command, result *code.ExecutionResult) error {
	out := cmd.OutOrStdout()

	if result.Output != "" {
		fmt.Fprint(out, result.Output)
	}

	switch result.Status {
	case code.StatusSuccess:
		fmt.Fprintf(out, "%s Finished in %.2fs\n", color.GreenString("✓"), result.ExecutionTime)
		return nil
	case code.StatusTimeout:
		return errors.New("execution timed out")
	case code.StatusSyntaxError, code.StatusError:
		if result.Error != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), result.Error)
		}
		return errors.Errorf("execution failed with status %q", result.Status)
	default:
		return errors.Errorf("unexpected execution status %q", result.Status)
	}
}
