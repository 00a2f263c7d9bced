package main

import (
	"os"

	"github.com/hindu-agent/setupctl/internal/cli"
	"github.com/hindu-agent/setupctl/internal/logging"
)

// main is the entry point for the setupctl CLI binary.
func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("setup failed", "error", err)
		os.Exit(1)
	}
}
