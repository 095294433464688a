package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-autolayout/internal/config"
	"github.com/grindlemire/go-autolayout/internal/logging"
	"github.com/grindlemire/go-autolayout/pkg/compile"
)

// app holds the state shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// flags
	configPath   string
	verbose      bool
	logLevel     string
	format       string
	horizontal   string
	vertical     string
	independent  string
	templateDirs []string
	workers      int
	exclude      []string

	cfg     *config.Config
	logger  *zap.Logger
	library *compile.Library
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "alc",
		Short: "alc - compiler for declarative auto-layout files",
		Long: `alc reads layout files (*.layout.yaml, *.layout.yml, *.layout.json),
builds their view hierarchies and resolves every constraint directive into
a layout equation.

Paths may be files, directories, dir/... for a recursive walk, or glob
patterns such as 'screens/**/*.layout.yaml'.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default .alc.yaml if present)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output with debug logging")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.format, "format", "", "output format: text, json, yaml")
	flags.StringVar(&a.horizontal, "horizontal", "", "horizontal size class of the environment: compact, regular, any")
	flags.StringVar(&a.vertical, "vertical", "", "vertical size class of the environment: compact, regular, any")
	flags.StringVar(&a.independent, "independent", "", "width/height handling: unless-referenced, always")
	flags.StringSliceVar(&a.templateDirs, "template-dir", nil, "directory to load templates from (repeatable)")
	flags.IntVar(&a.workers, "workers", 0, "files compiled in parallel")
	flags.StringSliceVar(&a.exclude, "exclude", nil, "glob of files to skip (repeatable)")

	root.AddCommand(
		newCompileCmd(a),
		newCheckCmd(a),
		newWatchCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads configuration, applies flags on top and builds the logger and
// template library.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("horizontal") {
		cfg.HorizontalSizeClass = a.horizontal
	}
	if flags.Changed("vertical") {
		cfg.VerticalSizeClass = a.vertical
	}
	if flags.Changed("independent") {
		cfg.IndependentPolicy = a.independent
	}
	if flags.Changed("template-dir") {
		cfg.TemplateDirs = a.templateDirs
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, a.exclude...)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	if a.logger == nil {
		logger, err := logging.New(cfg.LogLevel, a.verbose)
		if err != nil {
			return err
		}
		a.logger = logger
	}

	if len(cfg.TemplateDirs) > 0 {
		lib, err := compile.NewLibrary(cfg.TemplateDirs, cfg.TemplateCacheSize)
		if err != nil {
			return err
		}
		a.library = lib
	}

	a.logger.Debug("configuration loaded",
		zap.String("format", cfg.Format),
		zap.String("horizontal", cfg.HorizontalSizeClass),
		zap.String("vertical", cfg.VerticalSizeClass),
		zap.String("independent", cfg.IndependentPolicy),
		zap.Strings("templateDirs", cfg.TemplateDirs),
		zap.Int("workers", cfg.Workers),
	)
	return nil
}

// options returns compile options for the loaded configuration.
func (a *app) options() compile.Options {
	opts := compile.Options{
		Traits:  a.cfg.Traits(),
		Policy:  a.cfg.Policy(),
		Workers: a.cfg.Workers,
	}
	if a.library != nil {
		opts.Library = a.library
	}
	return opts
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "alc version %s\n", version)
		},
	}
}
