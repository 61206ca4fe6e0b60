package frontend

import (
	"github.com/pkg/browser"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/frontend"
	"github.com/devsensei-ai/devsensei-cli/cmd/validator"
	"github.com/devsensei-ai/devsensei-cli/settings"
)

type frontendOpts struct {
	cfg     *settings.Config
	client  frontend.FrontendClient
	fs      afero.Fs
	openURL func(string) error
}

// Option configures a command created by NewFrontendCommand
type Option interface {
	apply(*frontendOpts)
}

// NewFrontendCommand generates a cobra command for the UI builder.
func NewFrontendCommand(config *settings.Config, preRunE validator.Validator, opts ...Option) *cobra.Command {
	fopts := frontendOpts{
		cfg:     config,
		fs:      afero.NewOsFs(),
		openURL: browser.OpenURL,
	}
	for _, o := range opts {
		o.apply(&fopts)
	}

	command := &cobra.Command{
		Use:   "frontend",
		Short: "Generate UI projects and components.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if preRunE != nil {
				if err := preRunE(cmd, args); err != nil {
					return err
				}
			}
			if fopts.client == nil {
				fopts.client = frontend.NewFrontendRestClient(config)
			}
			return nil
		},
	}

	command.AddCommand(newProjectCommand(&fopts))
	command.AddCommand(newComponentCommand(&fopts))
	command.AddCommand(newPreviewCommand(&fopts))

	return command
}

type customFsOption struct {
	fs afero.Fs
}

func (c customFsOption) apply(opts *frontendOpts) {
	opts.fs = c.fs
}

// CustomFs returns an Option that routes file access through the given
// filesystem. Tests pass an in-memory one.
func CustomFs(fs afero.Fs) Option {
	return customFsOption{fs}
}

type customOpenURLOption struct {
	openURL func(string) error
}

func (c customOpenURLOption) apply(opts *frontendOpts) {
	opts.openURL = c.openURL
}

// CustomOpenURL returns an Option that swaps the browser launcher.
func CustomOpenURL(openURL func(string) error) Option {
	return customOpenURLOption{openURL}
}
