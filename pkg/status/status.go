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

package status

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/stephenwhippuk/expvm1/pkg/log"
)

// 📊 FileStatus represents the outcome of processing one file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusFixed                // File was rewritten and written back
	StatusUnchanged            // File was left byte-identical, no write
	StatusWouldFix             // Dry run: file would be rewritten
	StatusMissing              // Path does not exist, warned and skipped
	StatusIgnored              // File matched an ignore pattern
	StatusFailed               // Hard I/O error, the run aborts
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusFixed:
		return "fixed"
	case StatusUnchanged:
		return "unchanged"
	case StatusWouldFix:
		return "would-fix"
	case StatusMissing:
		return "missing"
	case StatusIgnored:
		return "ignored"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileResult records the outcome of processing one file
type FileResult struct {
	Path         string     // Path as given on the command line
	Status       FileStatus // Outcome
	Replacements int        // Substitutions applied (or pending, in a dry run)
	Error        error      // Hard error for StatusFailed
}

// 💾 FileManager handles all file system operations
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
	BackupFile(ctx context.Context, path string) error
	FileExists(ctx context.Context, path string) (bool, error)
}

// 📈 StatusReporter tracks per-file outcomes and run totals
type StatusReporter interface {
	// Track records one file outcome and prints its console line
	Track(ctx context.Context, result FileResult)

	// GetResult returns the recorded outcome for a path
	GetResult(ctx context.Context, path string) (FileResult, error)

	// Results returns all recorded outcomes in arrival order
	Results(ctx context.Context) []FileResult

	// Summary aggregates the recorded outcomes
	Summary(ctx context.Context) log.RunSummary
}

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	logger    *log.Logger
	formatter FileFormatter

	// Result tracking
	mu      sync.RWMutex
	results []FileResult
	byPath  map[string]FileResult
}

// 🏭 New creates a new status manager
func New(logger *log.Logger, formatter FileFormatter) *Manager {
	return &Manager{
		logger:    logger,
		formatter: formatter,
		byPath:    make(map[string]FileResult),
	}
}

// FileManager interface implementation

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	tempPath := path + ".tmp"

	// Write to temp file
	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

func (m *Manager) BackupFile(ctx context.Context, path string) error {
	backupPath := path + ".bak"

	// Only backup if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.Errorf("checking file existence: %w", err)
	}

	// Copy file to backup
	if err := copyFile(path, backupPath); err != nil {
		return errors.Errorf("creating backup: %w", err)
	}

	return nil
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// StatusReporter interface implementation

func (m *Manager) Track(ctx context.Context, result FileResult) {
	m.mu.Lock()
	m.results = append(m.results, result)
	m.byPath[result.Path] = result
	m.mu.Unlock()

	m.logger.File(m.formatter.FormatResult(result))

	zerolog.Ctx(ctx).Debug().
		Str("path", result.Path).
		Stringer("status", result.Status).
		Int("replacements", result.Replacements).
		Msg("file processed")
}

func (m *Manager) GetResult(ctx context.Context, path string) (FileResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result, ok := m.byPath[path]
	if !ok {
		return FileResult{}, errors.Errorf("file not tracked: %s", path)
	}
	return result, nil
}

func (m *Manager) Results(ctx context.Context) []FileResult {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]FileResult, len(m.results))
	copy(results, m.results)
	return results
}

func (m *Manager) Summary(ctx context.Context) log.RunSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var s log.RunSummary
	for _, result := range m.results {
		switch result.Status {
		case StatusFixed, StatusWouldFix:
			s.Fixed++
		case StatusUnchanged:
			s.Unchanged++
		case StatusMissing:
			s.Missing++
		case StatusIgnored:
			s.Ignored++
		case StatusFailed:
			s.Failed++
		}
		s.Replacements += result.Replacements
	}
	return s
}

// Helper functions

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return errors.Errorf("copying file: %w", err)
	}

	return nil
}
