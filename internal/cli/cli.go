// Package cli implements the kintree command-line interface.
//
// # Commands
//
//   - hint: Generate layout hints for a pedigree file
//   - layout: Show the slot table a layout engine produces under the hints
//   - graph: Render the kinship graph as DOT or SVG
//   - cache: Manage the result cache
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// Defaults are read from $XDG_CONFIG_HOME/kintree/config.toml (or the file
// named by --config). Flags override the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kintree/pkg/buildinfo"
	"github.com/matzehuels/kintree/pkg/cache"
	"github.com/matzehuels/kintree/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "kintree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath overrides the default config file location.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Kintree computes layout hints for family pedigrees",
		Long:         `Kintree orders the generations of a pedigree and pins remarried partners next to each other, so that pedigree layouts need as few duplicated individuals and crossing lines as possible.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: "+filepath.Join("$XDG_CONFIG_HOME", appName, "config.toml")+")")

	root.AddCommand(c.hintCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// loadConfig reads the config file, falling back to defaults when it does
// not exist.
func (c *CLI) loadConfig() (pipeline.Config, error) {
	path := c.configPath
	if path == "" {
		dir, err := configDir()
		if err == nil {
			path = filepath.Join(dir, "config.toml")
		}
	}
	return pipeline.LoadConfig(path)
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, cfg pipeline.Config, noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(ctx, cfg.Cache, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func newCache(ctx context.Context, cfg cache.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if cfg.Backend == cache.BackendFile && cfg.Dir == "" {
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		cfg.Dir = dir
	}
	return cache.Open(ctx, cfg)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/kintree/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/kintree/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// pipelineFlags are the flags shared by commands that run the pipeline.
type pipelineFlags struct {
	engine  string
	loose   bool
	align   bool
	noCache bool
	refresh bool
}

func (f *pipelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.engine, "engine", "", "layout engine (default from config, else basic)")
	cmd.Flags().BoolVar(&f.loose, "loose", false, "do not pack the layout")
	cmd.Flags().BoolVar(&f.align, "align", false, "align parents over children")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results")
}

// options merges the flags over the configuration.
func (f *pipelineFlags) options(cmd *cobra.Command, cfg pipeline.Config, logger *log.Logger) pipeline.Options {
	opts := cfg.Options()
	if f.engine != "" {
		opts.Engine = f.engine
	}
	if cmd.Flags().Changed("loose") {
		opts.Loose = f.loose
	}
	if cmd.Flags().Changed("align") {
		opts.Align = f.align
	}
	opts.Refresh = f.refresh
	opts.Logger = logger
	return opts
}
