package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KyussCaesar/bq/filter"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-evaluate the query whenever a watched file changes",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths to watch")
			os.Exit(1)
		}

		matcher, err := resolveMatcher()
		if err != nil {
			logger.Fatal("Failed to compile query", zap.Error(err))
		}

		watcher, err := filter.NewWatcher(matcher, logger, args)
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}
		watcher.OnResult = func(r filter.Result) {
			fileStyle.Print(r.Path)
			fmt.Print(": ")
			if r.Matched {
				matchStyle.Println("MATCH")
			} else {
				noMatchStyle.Println("no match")
			}
		}

		if err := watcher.StartWatching(); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer watcher.StopWatching()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	},
}

func init() {
	watchCmd.Flags().StringVarP(&queryStr, "query", "q", "", "Boolean query to compile")
	watchCmd.Flags().StringVar(&queryName, "query-name", "", "Named query from the configuration file")
}
