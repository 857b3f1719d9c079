package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KyussCaesar/bq/filter"
)

// initCmd: bq init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new query configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if path == "" {
			path = filter.DefaultConfigPath
		}
		if err := filter.DefaultConfig().Save(path); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}
