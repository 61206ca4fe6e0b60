package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/prompt"
	"github.com/devsensei-ai/devsensei-cli/settings"
	"github.com/devsensei-ai/devsensei-cli/telemetry"
)

func newSetupCommand(config *settings.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Set up your DevSensei server and credentials.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, config)
		},
	}
}

func runSetup(cmd *cobra.Command, config *settings.Config) error {
	config.Host = prompt.ReadStringFromUser("DevSensei server URL", config.Host)

	askKey := config.Token == "" ||
		prompt.AskUserToConfirm("An API key is already set. Do you want to change it?")
	if askKey {
		token, err := prompt.ReadSecretStringFromUser("DevSensei API key")
		if err != nil {
			return err
		}
		if token != "" {
			config.Token = token
		}
	}

	if prompt.AskUserToConfirmWithDefault("Add a GitHub token for private repositories?", config.GitHubToken != "") {
		githubToken, err := prompt.ReadSecretStringFromUser("GitHub personal access token")
		if err != nil {
			return err
		}
		config.GitHubToken = githubToken
	}

	if prompt.AskUserToConfirmWithDefault("Add your own Gemini API key?", config.GeminiKey != "") {
		geminiKey, err := prompt.ReadSecretStringFromUser("Gemini API key")
		if err != nil {
			return err
		}
		config.GeminiKey = geminiKey
	}

	config.Telemetry = prompt.AskUserToConfirmWithDefault("Allow anonymous usage telemetry?", config.Telemetry)
	if config.Telemetry {
		ensureTelemetryID(config)
	}

	if err := config.WriteToDisk(); err != nil {
		return errors.Wrap(err, "writing settings")
	}

	if client, ok := telemetry.FromContext(cmd.Context()); ok {
		_ = client.Track(telemetry.CreateSetupEvent())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Setup complete. Settings written to %s\n", config.FileUsed)
	return nil
}
