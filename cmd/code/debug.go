package code

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/code"
	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/telemetry"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

func newDebugCommand(opts *codeOpts) *cobra.Command {
	var (
		language       string
		errorMessage   string
		expectedOutput string
		write          bool
	)

	cmd := &cobra.Command{
		Use:   "debug <file>",
		Short: "Find and fix bugs in a snippet.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := debugFile(cmd, opts, args[0], language, errorMessage, expectedOutput, write)

			if client, ok := telemetry.FromContext(cmd.Context()); ok {
				_ = client.Track(telemetry.CreateCodeEvent(telemetry.CommandInfo{
					Name: "debug",
				}, err))
			}

			return err
		},
		Example: `devsensei code debug broken.py --error "IndexError: list index out of range"`,
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Language of the snippet (inferred from the file extension when omitted)")
	cmd.Flags().StringVar(&errorMessage, "error", "", "The error message the snippet produces")
	cmd.Flags().StringVar(&expectedOutput, "expected", "", "What the snippet should print instead")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Replace the file with the fixed code")

	return cmd
}

func debugFile(cmd *cobra.Command, opts *codeOpts, path, language, errorMessage, expectedOutput string, write bool) error {
	source, language, err := readSource(cmd, opts.fs, path, language)
	if err != nil {
		return err
	}
	if path == "-" && write {
		return errors.New("--write needs a file, not stdin")
	}

	stop := ui.StartSpinner("Debugging...")
	result, err := opts.client.Debug(code.DebugRequest{
		Code:           source,
		Language:       language,
		ErrorMessage:   errorMessage,
		ExpectedOutput: expectedOutput,
	})
	stop()
	if err != nil {
		return errors.New(rest.ErrorMessage(err, "could not debug the snippet"))
	}

	out := cmd.OutOrStdout()

	if !result.BugsFound {
		fmt.Fprintf(out, "%s No bugs found.\n", color.GreenString("✓"))
		return nil
	}

	if result.Explanation != "" {
		fmt.Fprintln(out, result.Explanation)
		fmt.Fprintln(out)
	}

	if write {
		if err := afero.WriteFile(opts.fs, path, []byte(result.FixedCode), 0644); err != nil {
			return errors.Wrap(err, "writing fixed code")
		}
		fmt.Fprintf(out, "Updated %s\n", path)
	} else {
		fmt.Fprint(out, unifiedDiff(path, source, result.FixedCode))
	}

	if result.TestResult != nil && result.TestResult.Status == code.StatusSuccess {
		fmt.Fprintf(out, "%s The fix ran cleanly in %.2fs\n", color.GreenString("✓"), result.TestResult.ExecutionTime)
	}

	return nil
}
