package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/ghostescript/alias/internal/core/ports"
	"github.com/ghostescript/alias/internal/core/services/aliasmanagement"
	"github.com/ghostescript/alias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// Dependencies are the adapters the commands are built from. Finder and
// config loader are constructors because flags decide their arguments.
type Dependencies struct {
	Files           ports.AliasFileAccessor
	NewFinder       func(override string) ports.AliasFileFinder
	NewConfigLoader func(path string) (ports.ConfigLoader, error)
	NewPrompter     func(historyLimit int) (ports.Prompter, error)
	LogOutput       io.Writer
}

type rootOptions struct {
	aliasFile  string
	configPath string
	noColor    bool
	verbose    bool
}

// app is filled in by the root PersistentPreRunE once flags and config are known.
type app struct {
	svc          ports.AliasManagementService
	logger       *log.Logger
	historyLimit int
	newPrompter  func(historyLimit int) (ports.Prompter, error)
}

func (r *app) prompter() (ports.Prompter, error) {
	return r.newPrompter(r.historyLimit)
}

func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	opts := &rootOptions{}
	rt := &app{newPrompter: deps.NewPrompter}

	rootCmd := &cobra.Command{
		Use:   "aliasmgr",
		Short: "aliasmgr creates, lists and deletes entries in your shell alias file.",
		Long: `aliasmgr manages the aliases and functions in ~/.bash_aliases.
Run it without arguments for the interactive menu.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupApp(cmd, opts, deps, rt)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, rt)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.aliasFile, "file", "f", "", "alias file to manage (default ~/.bash_aliases)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/aliasmgr/config.yaml)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details to stderr")

	rootCmd.AddCommand(NewListCommand(rt))
	rootCmd.AddCommand(NewNamesCommand(rt))
	rootCmd.AddCommand(NewAddCommand(rt))
	rootCmd.AddCommand(NewDeleteCommand(rt))
	rootCmd.AddCommand(NewHelpSetupCommand(rt))

	return rootCmd
}

func setupApp(cmd *cobra.Command, opts *rootOptions, deps Dependencies, rt *app) error {
	if deps.Files == nil || deps.NewFinder == nil || deps.NewConfigLoader == nil || deps.NewPrompter == nil {
		return fmt.Errorf("dependencies not initialized for command %s", cmd.Name())
	}

	loader, err := deps.NewConfigLoader(opts.configPath)
	if err != nil {
		return err
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	logOutput := deps.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}
	level := log.WarnLevel
	if cfg.LogLevel != "" {
		parsed, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log_level in %s: %w", loader.Path(), err)
		}
		level = parsed
	}
	if opts.verbose {
		level = log.DebugLevel
	}
	rt.logger = log.NewWithOptions(logOutput, log.Options{Prefix: "aliasmgr", Level: level})
	rt.logger.Debug("configuration loaded", "path", loader.Path())

	if opts.noColor || (cfg.Color != nil && !*cfg.Color) {
		ui.SetColorEnabled(false)
	}

	override := cfg.AliasFile
	if opts.aliasFile != "" {
		override = opts.aliasFile
	}
	rt.historyLimit = cfg.HistoryLimit
	rt.svc = aliasmanagement.NewService(deps.Files, deps.NewFinder(override), rt.logger)
	return nil
}
