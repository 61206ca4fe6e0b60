package code

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/ui"
)

func newExplainQueryCommand(opts *codeOpts) *cobra.Command {
	var (
		dbType string
		schema string
	)

	cmd := &cobra.Command{
		Use:   "explain-query <query>...",
		Short: "Explain a database query in plain language.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return errors.New("the query cannot be blank")
			}

			stop := ui.StartSpinner("Explaining query...")
			result, err := opts.gemini.ExplainQuery(query, dbType, schema)
			stop()
			if err != nil {
				return errors.New(rest.ErrorMessage(err, "could not explain the query"))
			}

			if result.QueryType != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Query type: %s\n\n", result.QueryType)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Explanation)
			return nil
		},
		Example: `devsensei code explain-query --db postgresql "SELECT * FROM users WHERE age > 21"`,
	}

	cmd.Flags().StringVar(&dbType, "db", "sql", "Database flavor of the query, e.g. postgresql or mongodb")
	cmd.Flags().StringVar(&schema, "schema", "", "Schema description to ground the explanation on")

	return cmd
}
