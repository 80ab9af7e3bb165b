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

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📊 RunSummary aggregates per-file outcomes for the end-of-run report
type RunSummary struct {
	DryRun       bool // Whether the run was a dry run
	Fixed        int  // Files changed (or that would change, in a dry run)
	Unchanged    int  // Files left byte-identical
	Missing      int  // Paths warned about and skipped
	Ignored      int  // Files excluded by ignore patterns
	Failed       int  // Files that hit a hard I/O error
	Replacements int  // Total substitutions across all files
}

// 🎯 Logger handles structured logging with console output. Per-file result
// lines go to the console writer verbatim; structured records go to zerolog
// on stderr. Verbose feedback (rule hits, run summary) is pterm-backed and
// suppressed unless verbose is set.
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	verbose bool
}

// 🏭 New creates a new logger. The console writer receives user-facing
// output; structured records go to stderr at the given level.
func New(console io.Writer, level zerolog.Level, verbose bool) *Logger {
	if verbose {
		pterm.EnableDebugMessages()
	}
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
		verbose: verbose,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 File prints a per-file result line exactly as given. Downstream
// tooling greps these lines, so nothing is prepended or colored here.
func (l *Logger) File(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, line)
	l.zlog.Debug().Msg(line)
}

// 🔍 Rule reports one rule's substitution count for a file. Console output
// only appears in verbose mode; the structured record is always written.
func (l *Logger) Rule(path string, rule string, count int) {
	l.zlog.Debug().
		Str("file", path).
		Str("rule", rule).
		Int("count", count).
		Msg("rule applied")

	if !l.verbose {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Debug.
		WithPrefix(pterm.Prefix{Text: "🔍"}).
		WithWriter(l.console).
		Printf("%s: %s x%d\n", path, rule, count)
}

// 📊 Summary reports the end-of-run totals. Console output only appears in
// verbose mode; the structured record is always written.
func (l *Logger) Summary(s RunSummary) {
	l.zlog.Info().
		Bool("dry_run", s.DryRun).
		Int("fixed", s.Fixed).
		Int("unchanged", s.Unchanged).
		Int("missing", s.Missing).
		Int("ignored", s.Ignored).
		Int("failed", s.Failed).
		Int("replacements", s.Replacements).
		Msg("run summary")

	if !l.verbose {
		return
	}

	fixedLabel := "fixed"
	if s.DryRun {
		fixedLabel = "would fix"
	}
	parts := []string{
		fmt.Sprintf("%s %d", fixedLabel, s.Fixed),
		fmt.Sprintf("unchanged %d", s.Unchanged),
	}
	if s.Missing > 0 {
		parts = append(parts, fmt.Sprintf("skipped %d", s.Missing))
	}
	if s.Ignored > 0 {
		parts = append(parts, fmt.Sprintf("ignored %d", s.Ignored))
	}
	if s.Failed > 0 {
		parts = append(parts, fmt.Sprintf("failed %d", s.Failed))
	}
	parts = append(parts, fmt.Sprintf("replacements %d", s.Replacements))

	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Info.
		WithPrefix(pterm.Prefix{Text: "📊"}).
		WithWriter(l.console).
		Println(strings.Join(parts, ", "))
}

// 📝 Header logs a run header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("fixbrackets")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
