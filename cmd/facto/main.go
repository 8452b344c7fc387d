package main

import (
	"os"

	"github.com/facto-dev/facto/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
