package frontend

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/frontend"
	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/telemetry"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

var frameworkExtensions = map[string]string{
	"react":   ".jsx",
	"vue":     ".vue",
	"angular": ".ts",
	"vanilla": ".js",
}

func newComponentCommand(opts *frontendOpts) *cobra.Command {
	var (
		description string
		framework   string
		styling     string
		props       []string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "component <name>",
		Short: "Generate a single UI component.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := frontend.ComponentRequest{
				ComponentName: args[0],
				Description:   description,
				Framework:     framework,
				Styling:       styling,
			}
			var err error
			if request.Props, err = parseProps(props); err != nil {
				return err
			}

			err = generateComponent(cmd, opts, request, output)

			if client, ok := telemetry.FromContext(cmd.Context()); ok {
				_ = client.Track(telemetry.CreateFrontendEvent(telemetry.CommandInfo{
					Name:      "component",
					LocalArgs: map[string]string{"framework": framework},
				}, err))
			}

			return err
		},
		Example: `devsensei frontend component SearchBar -d "a search input with a clear button" --prop placeholder=string`,
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "What the component should do")
	cmd.Flags().StringVar(&framework, "framework", "react", fmt.Sprintf("Target framework: %s", strings.Join(frontend.Frameworks, ", ")))
	cmd.Flags().StringVar(&styling, "styling", "tailwind", fmt.Sprintf("Styling approach: %s", strings.Join(frontend.Stylings, ", ")))
	cmd.Flags().StringSliceVar(&props, "prop", nil, "Component prop as name=type (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the component to the given path (default <Name><framework extension>)")

	return cmd
}

// parseProps turns repeated name=type flags into the server's props object.
func parseProps(raw []string) (map[string]interface{}, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	props := make(map[string]interface{}, len(raw))
	for _, pair := range raw {
		name, propType, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, errors.Errorf("invalid prop %q; expected name=type", pair)
		}
		props[name] = propType
	}
	return props, nil
}

func generateComponent(cmd *cobra.Command, opts *frontendOpts, request frontend.ComponentRequest, output string) error {
	if strings.TrimSpace(request.Description) == "" {
		return errors.New("a component description is required; pass --description")
	}

	stop := ui.StartSpinner("Generating component...")
	result, err := opts.client.GenerateComponent(request)
	stop()
	if err != nil {
		return errors.New(rest.ErrorMessage(err, "could not generate the component"))
	}

	out := cmd.OutOrStdout()

	if output == "" {
		ext := frameworkExtensions[result.Framework]
		if ext == "" {
			ext = ".js"
		}
		output = result.ComponentName + ext
	}
	if err := afero.WriteFile(opts.fs, output, []byte(result.Code), 0644); err != nil {
		return errors.Wrap(err, "writing component")
	}
	fmt.Fprintf(out, "%s Component written to %s\n", color.GreenString("✓"), output)

	if result.UsageExample != "" {
		fmt.Fprintf(out, "\nUsage:\n%s\n", result.UsageExample)
	}
	if result.Explanation != "" {
		fmt.Fprintf(out, "\n%s\n", result.Explanation)
	}

	return nil
}
