package repo

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/docs"
	"github.com/devsensei-ai/devsensei-cli/api/repository"
	"github.com/devsensei-ai/devsensei-cli/cmd/validator"
	"github.com/devsensei-ai/devsensei-cli/git"
	"github.com/devsensei-ai/devsensei-cli/settings"
)

type repoOpts struct {
	cfg   *settings.Config
	repos repository.RepositoryClient
	docs  docs.DocsClient
	fs    afero.Fs
}

// Option configures a command created by NewRepoCommand
type Option interface {
	apply(*repoOpts)
}

// NewRepoCommand generates a cobra command for exploring repositories
func NewRepoCommand(config *settings.Config, preRunE validator.Validator, opts ...Option) *cobra.Command {
	ropts := repoOpts{
		cfg: config,
		fs:  afero.NewOsFs(),
	}
	for _, o := range opts {
		o.apply(&ropts)
	}

	command := &cobra.Command{
		Use:   "repo",
		Short: "Explore, analyze and document GitHub repositories.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if preRunE != nil {
				if err := preRunE(cmd, args); err != nil {
					return err
				}
			}
			if ropts.repos == nil {
				ropts.repos = repository.NewRepositoryRestClient(config)
			}
			if ropts.docs == nil {
				ropts.docs = docs.NewDocsRestClient(config)
			}
			return nil
		},
	}

	command.AddCommand(newListCommand(&ropts))
	command.AddCommand(newFileCommand(&ropts))
	command.AddCommand(newTreeCommand(&ropts))
	command.AddCommand(newAnalyzeCommand(&ropts))
	command.AddCommand(newDocsCommand(&ropts))
	command.AddCommand(newMapCommand(&ropts))
	command.AddCommand(newAskCommand(&ropts))

	return command
}

type customFsOption struct {
	fs afero.Fs
}

func (c customFsOption) apply(opts *repoOpts) {
	opts.fs = c.fs
}

// CustomFs returns an Option that routes file output through the given
// filesystem. Tests pass an in-memory one.
func CustomFs(fs afero.Fs) Option {
	return customFsOption{fs}
}

// resolveFullName returns the first argument when given, and otherwise falls
// back to the GitHub project of the current working directory's git remotes.
func resolveFullName(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	remote, err := git.InferProjectFromGitRemotes()
	if err != nil {
		return "", err
	}
	return remote.FullName(), nil
}
