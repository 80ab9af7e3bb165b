package operation

import (
	"context"

	"github.com/stephenwhippuk/expvm1/pkg/config"
	"github.com/stephenwhippuk/expvm1/pkg/log"
	"github.com/stephenwhippuk/expvm1/pkg/rewrite"
	"github.com/stephenwhippuk/expvm1/pkg/status"
)

// 🎯 Operation defines a runnable fixbrackets operation
type Operation interface {
	// Execute runs the operation to completion
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for operations
type Options struct {
	// Rewriter transforms file contents
	Rewriter rewrite.Rewriter
	// StatusMgr owns file I/O and per-file outcome tracking
	StatusMgr *status.Manager
	// Console emits user-facing output
	Console *log.Logger
	// Config is the loaded configuration, nil when no config file exists
	Config *config.Config
	// Args are the file paths or glob patterns to process, in order
	Args []string
	// DryRun reports pending changes without writing
	DryRun bool
	// Backup copies each changed file to <path>.bak before overwriting
	Backup bool
	// Verbose enables per-rule feedback and the run summary
	Verbose bool
}

// 🏗️ BaseOperation provides the shared wiring for operations
type BaseOperation struct {
	Rewriter  rewrite.Rewriter
	StatusMgr *status.Manager
	Console   *log.Logger
	Config    *config.Config
	Args      []string
	DryRun    bool
	Backup    bool
	Verbose   bool
}

// 🏭 NewBaseOperation creates the shared wiring from options
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{
		Rewriter:  opts.Rewriter,
		StatusMgr: opts.StatusMgr,
		Console:   opts.Console,
		Config:    opts.Config,
		Args:      opts.Args,
		DryRun:    opts.DryRun,
		Backup:    opts.Backup,
		Verbose:   opts.Verbose,
	}
}
