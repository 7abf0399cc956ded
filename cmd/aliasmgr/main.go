package main

import (
	"fmt"
	"os"

	"github.com/ghostescript/alias/internal/adapters/config"
	"github.com/ghostescript/alias/internal/adapters/prompt"
	"github.com/ghostescript/alias/internal/handlers/cli"
	"github.com/ghostescript/alias/internal/handlers/ui"
	"github.com/ghostescript/alias/internal/repositories/aliasfile"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, cli.Dependencies{
		Files:           aliasfile.NewAccessor(),
		NewFinder:       aliasfile.NewDefaultAliasFileFinder,
		NewConfigLoader: config.NewYAMLLoader,
		NewPrompter:     prompt.NewReadlinePrompter,
		LogOutput:       os.Stderr,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
