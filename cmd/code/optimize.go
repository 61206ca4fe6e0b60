package code

import (
	"fmt"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/code"
	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/telemetry"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

var optimizationTypes = []string{"performance", "memory", "readability"}

func newOptimizeCommand(opts *codeOpts) *cobra.Command {
	var (
		language string
		goal     string
		write    bool
	)

	cmd := &cobra.Command{
		Use:   "optimize <file>",
		Short: "Rewrite a snippet for performance, memory or readability.",
		Long: `Rewrite a snippet for performance, memory or readability.

By default the rewrite is shown as a unified diff against the original file.
Pass --write to replace the file content instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := optimizeFile(cmd, opts, args[0], language, goal, write)

			if client, ok := telemetry.FromContext(cmd.Context()); ok {
				_ = client.Track(telemetry.CreateCodeEvent(telemetry.CommandInfo{
					Name:      "optimize",
					LocalArgs: map[string]string{"goal": goal},
				}, err))
			}

			return err
		},
		Example: `devsensei code optimize slow.py --goal performance`,
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Language of the snippet (inferred from the file extension when omitted)")
	cmd.Flags().StringVar(&goal, "goal", "performance", "Optimization goal: performance, memory or readability")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Replace the file with the optimized code")

	return cmd
}

func optimizeFile(cmd *cobra.Command, opts *codeOpts, path, language, goal string, write bool) error {
	if !validOptimizationType(goal) {
		return errors.Errorf("unknown optimization goal %q; expected one of %v", goal, optimizationTypes)
	}

	source, language, err := readSource(cmd, opts.fs, path, language)
	if err != nil {
		return err
	}
	if path == "-" && write {
		return errors.New("--write needs a file, not stdin")
	}

	stop := ui.StartSpinner("Optimizing...")
	result, err := opts.client.Optimize(code.OptimizeRequest{
		Code:             source,
		Language:         language,
		OptimizationType: goal,
	})
	stop()
	if err != nil {
		return errors.New(rest.ErrorMessage(err, "could not optimize the snippet"))
	}

	if result.Explanation != "" {
		fmt.Fprintln(cmd.OutOrStdout(), result.Explanation)
		fmt.Fprintln(cmd.OutOrStdout())
	}

	if write {
		if err := afero.WriteFile(opts.fs, path, []byte(result.OptimizedCode), 0644); err != nil {
			return errors.Wrap(err, "writing optimized code")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", path)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), unifiedDiff(path, source, result.OptimizedCode))
	return nil
}

func unifiedDiff(path, original, optimized string) string {
	edits := myers.ComputeEdits(span.URIFromPath(path), original, optimized)
	return fmt.Sprint(gotextdiff.ToUnified(path, path+" (optimized)", original, edits))
}

func validOptimizationType(goal string) bool {
	for _, t := range optimizationTypes {
		if goal == t {
			return true
		}
	}
	return false
}
