// Package main is the entry point for the taskpad editor.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/taskpad/internal/app"
	"github.com/dshills/taskpad/internal/config"
	"github.com/dshills/taskpad/internal/editor"
	"github.com/dshills/taskpad/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	configPath  string
	logLevel    string
	logFile     string
	noClipboard bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "taskpad FILE",
		Short: "A small terminal editor for notes and task lists",
		Long: `taskpad edits one text file of notes and "- [ ]" tasks.

Search with ctrl-s/ctrl-r, jump to any line with ctrl-f and reorder open
tasks with alt-t. Settings are read from a TOML or YAML file and reloaded
when it changes.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, args[0], opts)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("taskpad %s\nCommit: %s\nBuilt: %s\n", version, commit, date))

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to configuration file (.toml, .yaml)")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.StringVar(&opts.logFile, "log-file", "", "append logs to this file")
	f.BoolVar(&opts.noClipboard, "no-clipboard", false, "keep killed text inside the editor")
	return cmd
}

func runEditor(cmd *cobra.Command, path string, opts options) error {
	cfgPath, err := configPath(opts.configPath)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	logger, closer, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer closer.Close()

	var clip editor.Clipboard
	if cfg.Editor.Clipboard && !opts.noClipboard {
		clip = editor.SystemClipboard{}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}

	a, err := app.New(screen, app.Options{
		Path:       path,
		Config:     cfg,
		ConfigPath: cfgPath,
		Logger:     logger,
		Clipboard:  clip,
	})
	if err != nil {
		return err
	}
	return a.Run(cmd.Context())
}

// configPath returns the explicit path or the per-user default. An empty
// result means no config file is used.
func configPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config: %w", err)
		}
		return explicit, nil
	}
	p, err := config.DefaultPath()
	if err != nil {
		return "", nil
	}
	return p, nil
}

// loadConfig reads and validates the config at path. An empty path or a
// missing file yields the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
