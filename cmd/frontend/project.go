package frontend

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/frontend"
	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/telemetry"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

func newProjectCommand(opts *frontendOpts) *cobra.Command {
	var (
		description string
		framework   string
		styling     string
		components  []string
		features    []string
	)

	cmd := &cobra.Command{
		Use:   "project <name>",
		Short: "Scaffold a whole UI project from a description.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := generateProject(cmd, opts, frontend.ProjectRequest{
				ProjectName: args[0],
				Description: description,
				Framework:   framework,
				Styling:     styling,
				Components:  components,
				Features:    features,
			})

			if client, ok := telemetry.FromContext(cmd.Context()); ok {
				_ = client.Track(telemetry.CreateFrontendEvent(telemetry.CommandInfo{
					Name:      "project",
					LocalArgs: map[string]string{"framework": framework},
				}, err))
			}

			return err
		},
		Example: `devsensei frontend project todo-app -d "a todo list with filters" --framework react`,
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "What the project should do")
	cmd.Flags().StringVar(&framework, "framework", "react", fmt.Sprintf("Target framework: %s", strings.Join(frontend.Frameworks, ", ")))
	cmd.Flags().StringVar(&styling, "styling", "tailwind", fmt.Sprintf("Styling approach: %s", strings.Join(frontend.Stylings, ", ")))
	cmd.Flags().StringSliceVar(&components, "component", nil, "Component to include (repeatable)")
	cmd.Flags().StringSliceVar(&features, "feature", nil, "Feature to include (repeatable)")

	return cmd
}

func generateProject(cmd *cobra.Command, opts *frontendOpts, request frontend.ProjectRequest) error {
	if strings.TrimSpace(request.Description) == "" {
		return errors.New("a project description is required; pass --description")
	}

	stop := ui.StartSpinner("Scaffolding project...")
	result, err := opts.client.GenerateProject(request)
	stop()
	if err != nil {
		return errors.New(rest.ErrorMessage(err, "could not generate the project"))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Generated %s project %q (%s, %s)\n",
		color.GreenString("✓"), result.Framework, result.ProjectName, result.Styling, strings.Join(result.Components, ", "))

	if result.Structure != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, result.Structure)
	}

	if result.DownloadURL != "" {
		fmt.Fprintf(out, "\nDownload: %s\n", resolveAgainstHost(opts.cfg.Host, result.DownloadURL))
	}

	if len(result.SetupInstructions) > 0 {
		fmt.Fprintln(out, "\nTo get started:")
		for _, step := range result.SetupInstructions {
			fmt.Fprintf(out, "  %s\n", step)
		}
	}

	return nil
}
