package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KyussCaesar/bq"
)

// checkCmd: bq check
var checkCmd = &cobra.Command{
	Use:   "check <query>",
	Short: "Validate a query and print its compiled form",
	Long: `Compiles the query without evaluating it, reporting syntax errors with
their position. On success, prints the fully parenthesized form so the
operator precedence is visible.
Example) bq check '"a" & "b" | "c"'`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		matcher, err := bq.From(args[0])
		if err != nil {
			noMatchStyle.Fprintf(os.Stderr, "invalid query: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(matcher)
	},
}
