package main

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stephenwhippuk/expvm1/pkg/config"
	"github.com/stephenwhippuk/expvm1/pkg/log"
	"github.com/stephenwhippuk/expvm1/pkg/operation"
	"github.com/stephenwhippuk/expvm1/pkg/rewrite"
	"github.com/stephenwhippuk/expvm1/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// Handler holds the resolved command line for a single run
type Handler struct {
	configFile string
	dryRun     bool
	backup     bool
	verbose    bool
	debug      bool
	noColor    bool

	stdout io.Writer
}

// NewCommand creates the fixbrackets root command
func NewCommand() *cobra.Command {
	h := &Handler{}

	cmd := &cobra.Command{
		Use:   "fixbrackets <file> [file ...]",
		Short: "Rewrite bracketed memory operands in assembly sources",
		Long: `fixbrackets converts the legacy bracketed memory-operand syntax in .asm
sources into the dialect the assembler expects. Each file is rewritten in
place; files that need no changes are left untouched.

Arguments are file paths, processed in order. An argument that does not name
an existing file and contains glob metacharacters is expanded (doublestar
patterns like 'src/**/*.asm' are supported), with matches processed in sorted
order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			h.stdout = cmd.OutOrStdout()
			h.setupLogging()
			return h.Run(cmd.Context(), args)
		},
	}

	cmd.Flags().StringVarP(&h.configFile, "config", "c", "", "config file path (discovered when empty)")
	cmd.Flags().BoolVar(&h.dryRun, "dry-run", false, "report pending changes without writing")
	cmd.Flags().BoolVar(&h.backup, "backup", false, "copy each changed file to <file>.bak before overwriting")
	cmd.Flags().BoolVarP(&h.verbose, "verbose", "v", false, "per-rule feedback and a run summary")
	cmd.Flags().BoolVarP(&h.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVar(&h.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// setupLogging configures zerolog based on flags
func (h *Handler) setupLogging() {
	if h.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}

// Run executes a rewrite over the argument files
func (h *Handler) Run(ctx context.Context, args []string) error {
	logger := zerolog.Ctx(ctx)

	if h.noColor {
		color.NoColor = true
	}

	level := zerolog.WarnLevel
	if h.debug {
		level = zerolog.DebugLevel
	}
	console := log.New(h.stdout, level, h.verbose)
	ctx = log.NewContext(ctx, console)

	cfg, err := h.loadConfig(ctx)
	if err != nil {
		return err
	}
	if cfg != nil && h.verbose {
		console.Infof("using config %s", cfg.Location())
	}

	rewriter := rewrite.New()
	backup := h.backup
	if cfg != nil {
		if len(cfg.Replacements) > 0 {
			extras := make([]rewrite.Replacement, 0, len(cfg.Replacements))
			for _, r := range cfg.Replacements {
				extras = append(extras, rewrite.Replacement{Old: r.Old, New: r.New})
			}
			rewriter = rewrite.NewWithReplacements(extras)
		}
		backup = backup || cfg.Backup
	}

	statusMgr := status.New(console, status.NewFileFormatter(h.noColor))

	op, err := operation.NewFixOperation(operation.Options{
		Rewriter:  rewriter,
		StatusMgr: statusMgr,
		Console:   console,
		Config:    cfg,
		Args:      args,
		DryRun:    h.dryRun,
		Backup:    backup,
		Verbose:   h.verbose,
	})
	if err != nil {
		return errors.Errorf("creating operation: %w", err)
	}

	if err := operation.NewRunner(logger, true).Run(ctx, op); err != nil {
		return err
	}

	if h.verbose {
		console.Success("all files processed")
	}
	return nil
}

// loadConfig resolves the configuration. An explicit --config path must load;
// discovery is allowed to find nothing.
func (h *Handler) loadConfig(ctx context.Context) (*config.Config, error) {
	if h.configFile != "" {
		cfg, err := config.Load(ctx, h.configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Errorf("getting working directory: %w", err)
	}
	cfg, err := config.Discover(ctx, cwd)
	if err != nil {
		return nil, errors.Errorf("discovering config: %w", err)
	}
	return cfg, nil
}
