package main

import (
	"os"

	"github.com/aoiro-dev/aoiro/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
