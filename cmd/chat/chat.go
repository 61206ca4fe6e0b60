package chat

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/chat"
	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/cmd/validator"
	"github.com/devsensei-ai/devsensei-cli/settings"
	"github.com/devsensei-ai/devsensei-cli/slug"
	"github.com/devsensei-ai/devsensei-cli/telemetry"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

var (
	userStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	assistantStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	faintStyle     = lipgloss.NewStyle().Faint(true)
)

type chatOpts struct {
	cfg    *settings.Config
	client chat.ChatClient
}

// Option configures a command created by NewChatCommand
type Option interface {
	apply(*chatOpts)
}

type customClientOption struct {
	client chat.ChatClient
}

func (c customClientOption) apply(opts *chatOpts) {
	opts.client = c.client
}

// CustomClient returns an Option that swaps the API client. Tests pass a
// stub.
func CustomClient(client chat.ChatClient) Option {
	return customClientOption{client}
}

// NewChatCommand generates a cobra command for the interactive AI chat.
func NewChatCommand(config *settings.Config, preRunE validator.Validator, opts ...Option) *cobra.Command {
	copts := chatOpts{cfg: config}
	for _, o := range opts {
		o.apply(&copts)
	}

	var (
		repoName string
		noRAG    bool
	)

	command := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive AI chat session.",
		Long: `Start an interactive AI chat session.

With --repo the conversation is grounded on that repository's indexed code.
Inside the session, /repo switches the repository (and starts a fresh
conversation), /clear drops the history, and /exit leaves.`,
		Args: cobra.ExactArgs(0),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if preRunE != nil {
				if err := preRunE(cmd, args); err != nil {
					return err
				}
			}
			if copts.client == nil {
				copts.client = chat.NewChatRestClient(config)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			turns, err := runSession(cmd, &copts, repoName, !noRAG)

			if client, ok := telemetry.FromContext(cmd.Context()); ok {
				_ = client.Track(telemetry.CreateChatEvent(turns))
			}

			return err
		},
		Example: `devsensei chat --repo octocat/Hello-World`,
	}

	command.Flags().StringVar(&repoName, "repo", "", "Repository full name (owner/repo) to ground the conversation on")
	command.Flags().BoolVar(&noRAG, "no-rag", false, "Answer from the model alone, without retrieved code snippets")

	return command
}

// session is the client side of one conversation. The history is resent in
// full on every turn, and switching repositories starts a new history.
type session struct {
	messages []chat.Message
	repoName string
	useRAG   bool
	turns    int
}

func runSession(cmd *cobra.Command, opts *chatOpts, repoName string, useRAG bool) (int, error) {
	if repoName != "" {
		if _, _, err := slug.Split(repoName); err != nil {
			return 0, err
		}
	}

	out := cmd.OutOrStdout()
	state := &session{repoName: repoName, useRAG: useRAG}

	if repoName != "" {
		fmt.Fprintln(out, faintStyle.Render(fmt.Sprintf("Chatting about %s. Type /exit to leave.", repoName)))
	} else {
		fmt.Fprintln(out, faintStyle.Render("Type /exit to leave, /repo owner/name to talk about a repository."))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprintf(out, "%s ", userStyle.Render(">"))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return state.turns, scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/exit" || line == "/quit":
			return state.turns, nil
		case line == "/clear":
			state.messages = nil
			fmt.Fprintln(out, faintStyle.Render("History cleared."))
			continue
		case strings.HasPrefix(line, "/repo"):
			if err := switchRepo(out, state, strings.TrimSpace(strings.TrimPrefix(line, "/repo"))); err != nil {
				fmt.Fprintln(out, err.Error())
			}
			continue
		case strings.HasPrefix(line, "/"):
			fmt.Fprintln(out, faintStyle.Render("Commands: /repo owner/name, /clear, /exit"))
			continue
		}

		if err := sendTurn(cmd, opts, state, line); err != nil {
			// One failed turn should not end the session.
			fmt.Fprintln(out, err.Error())
		}
	}
}

// switchRepo rebinds the session to another repository. The history belongs
// to the old repository's context, so it is dropped.
func switchRepo(out io.Writer, state *session, name string) error {
	if name == "" {
		return errors.New("usage: /repo owner/name")
	}
	if _, _, err := slug.Split(name); err != nil {
		return err
	}

	state.repoName = name
	state.messages = nil
	fmt.Fprintln(out, faintStyle.Render(fmt.Sprintf("Now chatting about %s. History cleared.", name)))
	return nil
}

func sendTurn(cmd *cobra.Command, opts *chatOpts, state *session, content string) error {
	history := append(state.messages, chat.Message{Role: chat.RoleUser, Content: content})

	stop := ui.StartSpinner("Thinking...")
	resp, err := opts.client.Chat(chat.Request{
		Messages: history,
		RepoName: state.repoName,
		UseRAG:   state.useRAG && state.repoName != "",
	})
	stop()
	if err != nil {
		return errors.New(rest.ErrorMessage(err, "could not get a reply"))
	}

	// Only a delivered turn becomes part of the history.
	state.messages = append(history, chat.Message{Role: chat.RoleAssistant, Content: resp.Response})
	state.turns++

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", assistantStyle.Render("devsensei:"), resp.Response)
	if len(resp.Sources) > 0 {
		fmt.Fprintln(out, faintStyle.Render(fmt.Sprintf("(%d snippets consulted)", len(resp.Sources))))
	}
	return nil
}
