package repo

import (
	"encoding/base64"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/docs"
	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/slug"
	"github.com/devsensei-ai/devsensei-cli/telemetry"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

const (
	sectionSetup        = "Setup guide"
	sectionArchitecture = "Architecture overview"
	sectionAPIDocs      = "API documentation"
	sectionCodebaseMap  = "Codebase map"
)

func newDocsCommand(opts *repoOpts) *cobra.Command {
	var (
		branch      string
		output      string
		mapOutput   string
		interactive bool
		skipSetup   bool
		skipArch    bool
		skipAPI     bool
		skipMap     bool
	)

	cmd := &cobra.Command{
		Use:   "docs [owner/repo]",
		Short: "Generate a PDF documentation bundle for a repository.",
		Long: `Generate a PDF documentation bundle for a repository.

Without an argument, the repository is inferred from the git remotes of the
current working directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fullName, err := resolveFullName(args)
			if err != nil {
				return err
			}

			request := docs.ProjectDocsRequest{
				Branch:              branch,
				IncludeSetup:        !skipSetup,
				IncludeArchitecture: !skipArch,
				IncludeAPIDocs:      !skipAPI,
				IncludeCodebaseMap:  !skipMap,
			}
			if request.Owner, request.Repo, err = slug.Split(fullName); err != nil {
				return err
			}

			if interactive {
				if err := chooseSections(&request); err != nil {
					return err
				}
			}

			err = generateDocs(cmd, opts, request, output, mapOutput)

			if client, ok := telemetry.FromContext(cmd.Context()); ok {
				_ = client.Track(telemetry.CreateRepoEvent(telemetry.CommandInfo{
					Name:      "docs",
					LocalArgs: map[string]string{"branch": branch},
				}, err))
			}

			return err
		},
		Example: `devsensei repo docs octocat/Hello-World -o hello-world.pdf`,
	}

	cmd.Flags().StringVar(&branch, "branch", "main", "Branch to document")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Path of the PDF to write (default <repo>-docs.pdf)")
	cmd.Flags().StringVar(&mapOutput, "map-output", "", "Also write the codebase map image to the given path")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose the documentation sections interactively")
	cmd.Flags().BoolVar(&skipSetup, "skip-setup", false, "Leave out the setup guide")
	cmd.Flags().BoolVar(&skipArch, "skip-architecture", false, "Leave out the architecture overview")
	cmd.Flags().BoolVar(&skipAPI, "skip-api-docs", false, "Leave out the API documentation")
	cmd.Flags().BoolVar(&skipMap, "skip-map", false, "Leave out the codebase map")

	return cmd
}

// chooseSections replaces the include flags with an interactive multi-select.
func chooseSections(request *docs.ProjectDocsRequest) error {
	chosen := []string{}
	prompt := &survey.MultiSelect{
		Message: "Which sections should the documentation include?",
		Options: []string{sectionSetup, sectionArchitecture, sectionAPIDocs, sectionCodebaseMap},
		Default: []string{sectionSetup, sectionArchitecture, sectionAPIDocs, sectionCodebaseMap},
	}
	if err := survey.AskOne(prompt, &chosen); err != nil {
		return err
	}

	request.IncludeSetup = false
	request.IncludeArchitecture = false
	request.IncludeAPIDocs = false
	request.IncludeCodebaseMap = false
	for _, section := range chosen {
		switch section {
		case sectionSetup:
			request.IncludeSetup = true
		case sectionArchitecture:
			request.IncludeArchitecture = true
		case sectionAPIDocs:
			request.IncludeAPIDocs = true
		case sectionCodebaseMap:
			request.IncludeCodebaseMap = true
		}
	}
	return nil
}

func generateDocs(cmd *cobra.Command, opts *repoOpts, request docs.ProjectDocsRequest, output, mapOutput string) error {
	stop := ui.StartSpinner("Generating documentation... this can take a while")
	result, err := opts.docs.GenerateProjectDocs(request)
	stop()
	if err != nil {
		return errors.New(rest.ErrorMessage(err, "could not generate documentation"))
	}

	pdf, err := base64.StdEncoding.DecodeString(result.PDF)
	if err != nil {
		return errors.Wrap(err, "decoding PDF payload")
	}

	if output == "" {
		output = request.Repo + "-docs.pdf"
	}
	if err := afero.WriteFile(opts.fs, output, pdf, 0644); err != nil {
		return errors.Wrap(err, "writing PDF")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Documentation written to %s\n", color.GreenString("✓"), output)

	if mapOutput != "" {
		if result.CodebaseMap == nil || result.CodebaseMap.Image == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "The server returned no codebase map; skipping image output.")
			return nil
		}
		if err := writeCodebaseMap(opts.fs, result.CodebaseMap, mapOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Codebase map written to %s\n", color.GreenString("✓"), mapOutput)
	}

	return nil
}

func writeCodebaseMap(fs afero.Fs, m *docs.CodebaseMap, path string) error {
	img, err := base64.StdEncoding.DecodeString(m.Image)
	if err != nil {
		return errors.Wrap(err, "decoding codebase map image")
	}
	return errors.Wrap(afero.WriteFile(fs, path, img, 0644), "writing codebase map")
}
