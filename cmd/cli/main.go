package main

import (
	"os"

	"github.com/coopfed/portal/cmd/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
