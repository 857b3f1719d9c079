package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KyussCaesar/bq"
	"github.com/KyussCaesar/bq/filter"
)

var (
	queryStr        string
	queryName       string
	matchJsonOutput bool
	onlyMatching    bool
)

var (
	matchStyle   = color.New(color.FgGreen, color.Bold)
	noMatchStyle = color.New(color.FgRed)
	fileStyle    = color.New(color.FgCyan, color.Bold)
)

var matchCmd = &cobra.Command{
	Use:   "match [paths...]",
	Short: "Test files (or stdin) against a boolean query",
	Long: `Compiles the query and applies it to each given file or directory.
With no paths, reads text from stdin. Exits 1 when nothing matched.
Example) bq match -q '"hello" & !"world"' docs/`,
	Run: func(cmd *cobra.Command, args []string) {
		matcher, err := resolveMatcher()
		if err != nil {
			logger.Fatal("Failed to compile query", zap.Error(err))
		}

		if len(args) == 0 {
			runMatchStdin(matcher)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		results, err := filter.ProcessFiles(ctx, logger, matcher, args)
		if err != nil {
			logger.Error("Error processing files", zap.Error(err))
			os.Exit(1)
		}

		printResults(results)

		for _, r := range results {
			if r.Matched {
				return
			}
		}
		os.Exit(1)
	},
}

func init() {
	matchCmd.Flags().StringVarP(&queryStr, "query", "q", "", "Boolean query to compile")
	matchCmd.Flags().StringVar(&queryName, "query-name", "", "Named query from the configuration file")
	matchCmd.Flags().BoolVar(&matchJsonOutput, "json", false, "Output results in JSON format")
	matchCmd.Flags().BoolVarP(&onlyMatching, "matching-only", "m", false, "Only list files that matched")
}

// resolveMatcher compiles the query given on the command line, or looks
// one up by name in the configuration file.
func resolveMatcher() (*bq.Matcher, error) {
	if queryStr != "" && queryName != "" {
		return nil, fmt.Errorf("--query and --query-name are mutually exclusive")
	}
	if queryStr != "" {
		return bq.From(queryStr)
	}
	if queryName != "" {
		config, err := filter.LoadConfig(cfgFile)
		if err != nil {
			return nil, err
		}
		return config.Compile(queryName)
	}
	return nil, fmt.Errorf("provide a query with --query or --query-name")
}

func runMatchStdin(matcher *bq.Matcher) {
	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Fatal("Failed to read stdin", zap.Error(err))
	}

	if matcher.Query(string(text)) {
		matchStyle.Println("MATCH")
		return
	}
	noMatchStyle.Println("no match")
	os.Exit(1)
}

func printResults(results []filter.Result) {
	if matchJsonOutput {
		d, err := json.Marshal(results)
		if err != nil {
			logger.Error("Error marshalling results to JSON", zap.Error(err))
			return
		}
		fmt.Println(string(d))
		return
	}

	for _, r := range results {
		if r.Matched {
			fileStyle.Print(r.Path)
			fmt.Print(": ")
			matchStyle.Println("MATCH")
		} else if !onlyMatching {
			fileStyle.Print(r.Path)
			fmt.Print(": ")
			noMatchStyle.Println("no match")
		}
	}
}
