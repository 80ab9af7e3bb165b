// Copyright 2026 Stephen Whippuk
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stephenwhippuk/expvm1/pkg/rewrite"
	"github.com/stephenwhippuk/expvm1/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewFixOperation creates a new fix operation
func NewFixOperation(opts Options) (Operation, error) {
	if opts.Rewriter == nil {
		return nil, errors.Errorf("rewriter is required")
	}
	if opts.StatusMgr == nil {
		return nil, errors.Errorf("status manager is required")
	}
	if opts.Console == nil {
		return nil, errors.Errorf("console logger is required")
	}
	if len(opts.Args) == 0 {
		return nil, errors.Errorf("at least one file argument is required")
	}
	return &fixOperation{
		BaseOperation: NewBaseOperation(opts),
	}, nil
}

// 📦 fixOperation implements the fix operation
type fixOperation struct {
	BaseOperation
}

// 🏃 Execute runs the fix operation
func (op *fixOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	paths, err := op.expandArgs(ctx)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("files", len(paths)).
		Bool("dry_run", op.DryRun).
		Msg("starting rewrite run")

	if op.Verbose {
		op.Console.Header(fmt.Sprintf("rewriting %d file(s)", len(paths)))
		if op.DryRun && op.Backup {
			op.Console.Warning("backup skipped in dry-run mode")
		}
	}

	// Process each file
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("run cancelled: %w", err)
		}
		if err := op.processFile(ctx, path); err != nil {
			return errors.Errorf("processing file %s: %w", path, err)
		}
	}

	if op.Verbose {
		summary := op.StatusMgr.Summary(ctx)
		summary.DryRun = op.DryRun
		op.Console.Summary(summary)
	}

	return nil
}

// 🗺️ expandArgs resolves the argument list into concrete file paths.
// An argument naming an existing file passes through untouched. An argument
// that does not exist and contains glob metacharacters is expanded, with
// matches processed in sorted order. Anything else also passes through, so
// the missing-file warning fires at the position the user gave it.
func (op *fixOperation) expandArgs(ctx context.Context) ([]string, error) {
	paths := make([]string, 0, len(op.Args))
	for _, arg := range op.Args {
		exists, err := op.StatusMgr.FileExists(ctx, arg)
		if err != nil {
			return nil, errors.Errorf("checking %s: %w", arg, err)
		}
		if exists || !isGlobPattern(arg) {
			paths = append(paths, arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, errors.Errorf("expanding pattern %s: %w", arg, err)
		}
		if len(matches) == 0 {
			paths = append(paths, arg)
			continue
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

// 📄 processFile rewrites a single file and records its outcome
func (op *fixOperation) processFile(ctx context.Context, path string) error {
	logger := zerolog.Ctx(ctx)

	// Check if file should be ignored
	if op.shouldIgnore(ctx, path) {
		op.StatusMgr.Track(ctx, status.FileResult{Path: path, Status: status.StatusIgnored})
		return nil
	}

	exists, err := op.StatusMgr.FileExists(ctx, path)
	if err != nil {
		op.StatusMgr.Track(ctx, status.FileResult{Path: path, Status: status.StatusFailed, Error: err})
		return errors.Errorf("checking file: %w", err)
	}
	if !exists {
		// Missing files are warned and skipped, not fatal
		op.StatusMgr.Track(ctx, status.FileResult{Path: path, Status: status.StatusMissing})
		return nil
	}

	content, err := op.StatusMgr.ReadFile(ctx, path)
	if err != nil {
		op.StatusMgr.Track(ctx, status.FileResult{Path: path, Status: status.StatusFailed, Error: err})
		return err
	}

	result := op.Rewriter.Rewrite(string(content))

	if op.Verbose {
		for _, hit := range result.Hits {
			op.Console.Rule(path, hit.Rule, hit.Count)
		}
	}

	if !result.Changed {
		op.StatusMgr.Track(ctx, status.FileResult{Path: path, Status: status.StatusUnchanged})
		return nil
	}

	if op.DryRun {
		if op.Verbose {
			op.showDiff(result)
		}
		op.StatusMgr.Track(ctx, status.FileResult{
			Path:         path,
			Status:       status.StatusWouldFix,
			Replacements: result.Replacements(),
		})
		return nil
	}

	if op.Backup {
		if err := op.StatusMgr.BackupFile(ctx, path); err != nil {
			op.StatusMgr.Track(ctx, status.FileResult{Path: path, Status: status.StatusFailed, Error: err})
			return err
		}
	}

	if err := op.StatusMgr.WriteFileAtomic(ctx, path, []byte(result.Text)); err != nil {
		op.StatusMgr.Track(ctx, status.FileResult{Path: path, Status: status.StatusFailed, Error: err})
		return err
	}

	logger.Debug().
		Str("path", path).
		Int("replacements", result.Replacements()).
		Msg("file rewritten")
	op.StatusMgr.Track(ctx, status.FileResult{
		Path:         path,
		Status:       status.StatusFixed,
		Replacements: result.Replacements(),
	})
	return nil
}

// 🔍 shouldIgnore checks if a file matches an ignore pattern
func (op *fixOperation) shouldIgnore(ctx context.Context, path string) bool {
	if op.Config == nil || len(op.Config.Ignore) == 0 {
		return false
	}

	logger := zerolog.Ctx(ctx)
	for _, pattern := range op.Config.Ignore {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("file", path).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}

	return false
}

// 📝 showDiff prints a character diff of the pending change
func (op *fixOperation) showDiff(result *rewrite.Result) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(result.Original, result.Text, false)
	op.Console.File(strings.TrimSuffix(dmp.DiffPrettyText(diffs), "\n"))
}

// 🔍 isGlobPattern reports whether arg contains glob metacharacters
func isGlobPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}
