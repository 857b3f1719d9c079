package main

import (
	"os"

	"github.com/KyussCaesar/bq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
