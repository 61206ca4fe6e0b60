package frontend

import (
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/frontend"
	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

func newPreviewCommand(opts *frontendOpts) *cobra.Command {
	var (
		cssPath string
		jsPath  string
		noOpen  bool
	)

	cmd := &cobra.Command{
		Use:   "preview <html-file>",
		Short: "Assemble an HTML/CSS/JS preview and open it in the browser.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return preview(cmd, opts, args[0], cssPath, jsPath, noOpen)
		},
		Example: `devsensei frontend preview index.html --css style.css`,
	}

	cmd.Flags().StringVar(&cssPath, "css", "", "Stylesheet to bundle into the preview")
	cmd.Flags().StringVar(&jsPath, "js", "", "Script to bundle into the preview")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Print the preview URL instead of opening a browser")

	return cmd
}

func preview(cmd *cobra.Command, opts *frontendOpts, htmlPath, cssPath, jsPath string, noOpen bool) error {
	request := frontend.PreviewRequest{}

	html, err := afero.ReadFile(opts.fs, htmlPath)
	if err != nil {
		return errors.Wrap(err, "reading HTML")
	}
	request.HTML = string(html)

	if cssPath != "" {
		css, err := afero.ReadFile(opts.fs, cssPath)
		if err != nil {
			return errors.Wrap(err, "reading CSS")
		}
		request.CSS = string(css)
	}
	if jsPath != "" {
		js, err := afero.ReadFile(opts.fs, jsPath)
		if err != nil {
			return errors.Wrap(err, "reading JavaScript")
		}
		request.JavaScript = string(js)
	}

	stop := ui.StartSpinner("Assembling preview...")
	result, err := opts.client.Preview(request)
	stop()
	if err != nil {
		return errors.New(rest.ErrorMessage(err, "could not assemble the preview"))
	}

	if !result.PreviewAvailable {
		return errors.New("the server did not produce a preview")
	}

	previewURL := resolveAgainstHost(opts.cfg.Host, result.PreviewURL)
	fmt.Fprintf(cmd.OutOrStdout(), "Preview ready at %s\n", previewURL)

	if noOpen {
		return nil
	}
	return errors.Wrap(opts.openURL(previewURL), "opening browser")
}

// resolveAgainstHost turns the server's relative URLs into absolute ones.
// Absolute URLs pass through untouched.
func resolveAgainstHost(host, ref string) string {
	base, err := url.Parse(host)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(refURL).String()
}
