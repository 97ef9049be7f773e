// Package cli implements the r3name command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/mydehq/r3name/internal/config"
	"github.com/mydehq/r3name/internal/matcher"
	"github.com/mydehq/r3name/internal/renamer"
	"github.com/mydehq/r3name/internal/types"
	"github.com/mydehq/r3name/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// rootOptions holds the parsed flags of one invocation.
type rootOptions struct {
	pattern     string
	replacement string
	dryRun      bool
	strict      bool
	confirm     bool
	verbose     bool
	color       string
	configPath  string
	preset      string
	savePreset  string
	listPresets bool
}

// environment carries the process fundamentals: streams, filesystem, terminal.
type environment struct {
	stdout          io.Writer
	stderr          io.Writer
	fs              afero.Fs
	stdinIsTerminal func() bool
	confirm         renamer.ConfirmFunc // nil means prompt on the terminal
}

// Execute runs the root command against the process arguments and returns
// the exit code.
func Execute() int {
	// SIGINT/SIGTERM stop the batch between paths.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	env := environment{
		stdout: os.Stdout,
		stderr: os.Stderr,
		fs:     afero.NewOsFs(),
		stdinIsTerminal: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
	return run(ctx, os.Args[1:], env)
}

func run(ctx context.Context, args []string, env environment) int {
	cmd := newRootCmd(env)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return exitCode(cmd, err, env.stderr)
}

func newRootCmd(env environment) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "r3name --pattern <pattern> --replacement <replacement> [--dry-run] <path>...",
		Short: "Rename paths with a regular expression",
		Long: `r3name renames each given path by replacing the first match of a regular
expression with a replacement string.

The pattern matches anywhere in the path, including directory components.
The replacement may reference capture groups as $1, ${1}, $name or ${name};
use $$ for a literal dollar sign.

Paths that don't match are skipped. A rename never overwrites an existing
path, and a failure on one path never stops the rest of the batch.`,
		Example: `  # Normalise extensions
  r3name --pattern '^(.*)\.jpeg$' --replacement '$1.jpg' *.jpeg

  # Preview first
  r3name --dry-run --pattern 'draft' --replacement 'final' notes/*.md

  # Use a preset from ~/.config/r3name/config.yml
  r3name --preset jpeg *.jpeg`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.listPresets || opts.savePreset != "" {
				return nil
			}
			if len(args) == 0 {
				return usageError{errors.New("requires at least one path")}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args, opts, env)
		},
	}

	cmd.SetOut(env.stdout)
	cmd.SetErr(env.stderr)
	cmd.SetVersionTemplate("r3name {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	f := cmd.Flags()
	f.StringVar(&opts.pattern, "pattern", "", "Pattern to match in the provided paths")
	f.StringVar(&opts.replacement, "replacement", "", "String used to replace pattern matches")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Show what would be renamed, but don't rename anything")
	f.BoolVar(&opts.strict, "strict", false, "Exit with a non-zero status if any path fails to rename")
	f.BoolVarP(&opts.confirm, "confirm", "i", false, "Ask before each rename")
	f.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	f.StringVar(&opts.color, "color", string(ui.ColorAuto), "Colorize output: auto, always or never")
	f.StringVar(&opts.configPath, "config", "", "Config file (default ~/.config/r3name/config.yml)")
	f.StringVar(&opts.preset, "preset", "", "Use a pattern/replacement preset from the config")
	f.StringVar(&opts.savePreset, "save-preset", "", "Save --pattern/--replacement as a named preset")
	f.BoolVar(&opts.listPresets, "list-presets", false, "List configured presets and exit")

	return cmd
}

func runRename(cmd *cobra.Command, args []string, opts *rootOptions, env environment) error {
	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	logger := ui.NewLogger(env.stderr, level)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load config: %v", err))
		return errReported
	}
	if cfg.Path != "" {
		logger.Debug("Loaded config", "path", cfg.Path)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil && !opts.verbose {
		logger.SetLevel(lvl)
	}

	applyConfigDefaults(cmd, opts, cfg)

	mode, err := ui.ParseColorMode(opts.color)
	if err != nil {
		return usageError{err}
	}
	printer := ui.NewPrinter(env.stdout, env.stderr, mode)

	if opts.listPresets {
		runListPresets(printer, cfg)
		return nil
	}

	pattern, replacement, err := resolveRule(cmd, opts, cfg)
	if err != nil {
		return err
	}

	re, err := matcher.Compile(pattern)
	if err != nil {
		logger.Error(fmt.Sprintf("Invalid pattern: %v", err))
		return errReported
	}
	logger.Debug("Compiled pattern", "pattern", re.String(), "replacement", replacement)

	if opts.savePreset != "" {
		path, err := savePreset(cfg, opts.configPath, opts.savePreset, pattern, replacement)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to save preset: %v", err))
			return errReported
		}
		s := printer.Styles()
		fmt.Fprintf(env.stdout, "%s %s: %s\n", s.Header.Render("Saved preset"), s.Command.Render(opts.savePreset), s.Path.Render(path))
		if len(args) == 0 {
			return nil
		}
	}

	r := renamer.New(env.fs, re, replacement)
	if opts.dryRun {
		r.WithDryRun()
	}
	if opts.confirm && !opts.dryRun {
		confirm := env.confirm
		if confirm == nil {
			if env.stdinIsTerminal == nil || !env.stdinIsTerminal() {
				return usageError{errors.New("--confirm requires an interactive terminal")}
			}
			confirm = ui.NewConfirmPrompt(env.stderr, mode).Confirm
		}
		r.WithConfirm(confirm)
	}

	logger.Debug("Starting batch",
		"paths", len(args),
		"dry_run", r.DryRun(),
		"strict", opts.strict,
		"confirm", opts.confirm)

	summary, err := r.Execute(cmd.Context(), args, printer.Report)

	logger.Debug("Batch complete",
		"renamed", summary.Renamed,
		"would_rename", summary.WouldRename,
		"skipped", summary.Skipped,
		"failed", summary.Failed)

	if err != nil {
		switch {
		case errors.Is(err, types.ErrUserAborted):
			logger.Warn("Rename cancelled", "remaining", len(args)-summary.Total())
		case errors.Is(err, context.Canceled):
			logger.Warn("Interrupted", "remaining", len(args)-summary.Total())
		default:
			logger.Error(err.Error())
		}
		return errReported
	}

	if opts.strict && summary.Failed > 0 {
		return errPathFailures
	}
	return nil
}

func loadConfig(path string) (*types.GlobalConfig, error) {
	if path == "" {
		return config.LoadGlobal()
	}
	return config.Load(path)
}

// applyConfigDefaults fills flags the user didn't set from the config file.
func applyConfigDefaults(cmd *cobra.Command, opts *rootOptions, cfg *types.GlobalConfig) {
	flags := cmd.Flags()
	if !flags.Changed("dry-run") {
		opts.dryRun = cfg.DryRun
	}
	if !flags.Changed("strict") {
		opts.strict = cfg.Strict
	}
	if !flags.Changed("color") && cfg.Color != "" {
		opts.color = cfg.Color
	}
}

// resolveRule picks the pattern and replacement from flags, falling back to
// the selected preset. An empty --replacement is valid.
func resolveRule(cmd *cobra.Command, opts *rootOptions, cfg *types.GlobalConfig) (string, string, error) {
	flags := cmd.Flags()
	pattern, replacement := opts.pattern, opts.replacement

	if opts.preset != "" {
		p, err := cfg.ResolvePreset(opts.preset)
		if err != nil {
			return "", "", usageError{err}
		}
		if !flags.Changed("pattern") {
			pattern = p.Pattern
		}
		if !flags.Changed("replacement") {
			replacement = p.Replacement
		}
		return pattern, replacement, nil
	}

	if !flags.Changed("pattern") {
		return "", "", usageError{errors.New(`required flag "pattern" not set`)}
	}
	if !flags.Changed("replacement") {
		return "", "", usageError{errors.New(`required flag "replacement" not set`)}
	}
	return pattern, replacement, nil
}
