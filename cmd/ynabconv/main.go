package main

import (
	"os"

	"github.com/ynab-tools/ynabconv/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
