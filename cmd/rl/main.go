package main

import (
	"os"

	"github.com/nikbrunner/rl/internal/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		os.Exit(1)
	}
}
