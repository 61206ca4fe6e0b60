package cmd

import (
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/devsensei-ai/devsensei-cli/api/header"
	"github.com/devsensei-ai/devsensei-cli/cmd/chat"
	"github.com/devsensei-ai/devsensei-cli/cmd/code"
	"github.com/devsensei-ai/devsensei-cli/cmd/frontend"
	"github.com/devsensei-ai/devsensei-cli/cmd/repo"
	"github.com/devsensei-ai/devsensei-cli/cmd/validator"
	"github.com/devsensei-ai/devsensei-cli/settings"
	"github.com/devsensei-ai/devsensei-cli/telemetry"
	"github.com/devsensei-ai/devsensei-cli/version"
)

// Execute loads settings, builds the command tree and runs it. This function
// is called by main.main().
func Execute() error {
	config := &settings.Config{}
	if err := config.Load(); err != nil {
		return errors.Wrap(err, "loading settings")
	}

	rootCmd := MakeCommands(config)
	return rootCmd.Execute()
}

// MakeCommands creates the top level commands
func MakeCommands(config *settings.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "devsensei",
		Short: "Explore repositories, run code and build UIs with DevSensei from the command line.",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			header.SetCommandStr(commandStr(cmd))
			cmd.SetContext(telemetry.NewContext(cmd.Context(), createTelemetry(config)))
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if client, ok := telemetry.FromContext(cmd.Context()); ok {
				_ = client.Close()
			}
		},
	}
	rootCmd.SilenceUsage = true
	bindRootFlags(rootCmd.PersistentFlags(), config)

	hasAPIKey := apiKeyValidator(config)

	rootCmd.AddCommand(repo.NewRepoCommand(config, hasAPIKey))
	rootCmd.AddCommand(code.NewCodeCommand(config, hasAPIKey))
	rootCmd.AddCommand(chat.NewChatCommand(config, hasAPIKey))
	rootCmd.AddCommand(frontend.NewFrontendCommand(config, hasAPIKey))
	rootCmd.AddCommand(newSetupCommand(config))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// bindRootFlags wires the persistent flags straight into the loaded settings,
// so a flag overrides both the file and the environment.
func bindRootFlags(flags *pflag.FlagSet, config *settings.Config) {
	flags.StringVar(&config.Host, "host", config.Host, "the URL of the DevSensei server")
	flags.BoolVar(&config.Debug, "debug", config.Debug, "enable debug logging")
}

// apiKeyValidator gates authenticated commands on a configured key, so an
// obviously doomed request is caught before it is ever sent.
func apiKeyValidator(config *settings.Config) validator.Validator {
	return func(_ *cobra.Command, _ []string) error {
		if config.Token == "" {
			return errors.New("no API key configured. Run 'devsensei setup' to add one")
		}
		return nil
	}
}

func createTelemetry(config *settings.Config) telemetry.Client {
	return telemetry.CreateClient(telemetry.User{
		UniqueID: config.TelemetryID,
		OS:       runtime.GOOS,
		Version:  version.Version,
	}, config.Telemetry)
}

// ensureTelemetryID assigns a stable anonymous id the first time telemetry is
// enabled.
func ensureTelemetryID(config *settings.Config) {
	if config.TelemetryID == "" {
		config.TelemetryID = uuid.New().String()
	}
}

// commandStr returns the subcommand path without the binary name, e.g.
// "repo list", so it can ride along as a request header.
func commandStr(cmd *cobra.Command) string {
	parts := strings.SplitN(cmd.CommandPath(), " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
