package main

import (
	"os"

	"github.com/simonhull/hatch/internal/commands"
	"github.com/simonhull/hatch/internal/output"
)

func main() {
	if err := commands.RootCmd().Execute(); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
