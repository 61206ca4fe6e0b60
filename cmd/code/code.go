package code

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/code"
	"github.com/devsensei-ai/devsensei-cli/api/gemini"
	"github.com/devsensei-ai/devsensei-cli/cmd/validator"
	"github.com/devsensei-ai/devsensei-cli/settings"
)

type codeOpts struct {
	cfg    *settings.Config
	client code.CodeClient
	gemini gemini.GeminiClient
	fs     afero.Fs
}

// Option configures a command created by NewCodeCommand
type Option interface {
	apply(*codeOpts)
}

// NewCodeCommand generates a cobra command for the code playground.
func NewCodeCommand(config *settings.Config, preRunE validator.Validator, opts ...Option) *cobra.Command {
	copts := codeOpts{
		cfg: config,
		fs:  afero.NewOsFs(),
	}
	for _, o := range opts {
		o.apply(&copts)
	}

	command := &cobra.Command{
		Use:   "code",
		Short: "Run, generate, optimize and debug code snippets.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if preRunE != nil {
				if err := preRunE(cmd, args); err != nil {
					return err
				}
			}
			if copts.client == nil {
				copts.client = code.NewCodeRestClient(config)
			}
			if copts.gemini == nil {
				copts.gemini = gemini.NewGeminiRestClient(config)
			}
			return nil
		},
	}

	command.AddCommand(newRunCommand(&copts))
	command.AddCommand(newGenerateCommand(&copts))
	command.AddCommand(newOptimizeCommand(&copts))
	command.AddCommand(newDebugCommand(&copts))
	command.AddCommand(newExplainCommand(&copts))
	command.AddCommand(newLanguagesCommand(&copts))
	command.AddCommand(newReviewCommand(&copts))
	command.AddCommand(newExplainQueryCommand(&copts))

	return command
}

type customFsOption struct {
	fs afero.Fs
}

func (c customFsOption) apply(opts *codeOpts) {
	opts.fs = c.fs
}

// CustomFs returns an Option that routes file access through the given
// filesystem. Tests pass an in-memory one.
func CustomFs(fs afero.Fs) Option {
	return customFsOption{fs}
}

var extensionLanguages = map[string]string{
	".py":    "python",
	".js":    "javascript",
	".ts":    "typescript",
	".go":    "go",
	".java":  "java",
	".c":     "c",
	".cc":    "cpp",
	".cpp":   "cpp",
	".cs":    "csharp",
	".rb":    "ruby",
	".rs":    "rust",
	".php":   "php",
	".kt":    "kotlin",
	".swift": "swift",
}

// readSource loads the snippet for a command. "-" reads stdin; anything else
// is a file path. When languageFlag is empty the language is inferred from
// the file extension.
func readSource(cmd *cobra.Command, fs afero.Fs, path, languageFlag string) (source, language string, err error) {
	var raw []byte
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = afero.ReadFile(fs, path)
	}
	if err != nil {
		return "", "", errors.Wrap(err, "reading source")
	}

	language = languageFlag
	if language == "" && path != "-" {
		language = extensionLanguages[strings.ToLower(filepath.Ext(path))]
	}
	if language == "" {
		return "", "", errors.New("could not infer the language; pass --language")
	}

	return string(raw), language, nil
}
