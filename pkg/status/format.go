package status

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// FileFormatter defines how per-file outcomes are rendered as console lines
type FileFormatter interface {
	// FormatResult formats the console line for one file outcome
	FormatResult(result FileResult) string
}

// PlainFormatter renders the unadorned result lines. Scripts grep these, so
// the wording is fixed.
type PlainFormatter struct{}

// NewPlainFormatter creates a new PlainFormatter
func NewPlainFormatter() *PlainFormatter {
	return &PlainFormatter{}
}

// FormatResult implements FileFormatter.FormatResult
func (f *PlainFormatter) FormatResult(result FileResult) string {
	switch result.Status {
	case StatusFixed:
		return fmt.Sprintf("Fixed: %s", result.Path)
	case StatusUnchanged:
		return fmt.Sprintf("No changes: %s", result.Path)
	case StatusWouldFix:
		return fmt.Sprintf("Would fix: %s", result.Path)
	case StatusMissing:
		return fmt.Sprintf("Warning: %s not found, skipping", result.Path)
	case StatusIgnored:
		return fmt.Sprintf("Ignored: %s", result.Path)
	case StatusFailed:
		return fmt.Sprintf("Error: %s: %v", result.Path, result.Error)
	default:
		return fmt.Sprintf("Unknown: %s", result.Path)
	}
}

// ColorFormatter renders the same lines with a colored status word
type ColorFormatter struct{}

// NewColorFormatter creates a new ColorFormatter
func NewColorFormatter() *ColorFormatter {
	return &ColorFormatter{}
}

// FormatResult implements FileFormatter.FormatResult
func (f *ColorFormatter) FormatResult(result FileResult) string {
	switch result.Status {
	case StatusFixed:
		return fmt.Sprintf("%s %s", color.GreenString("Fixed:"), result.Path)
	case StatusUnchanged:
		return fmt.Sprintf("%s %s", color.HiBlackString("No changes:"), result.Path)
	case StatusWouldFix:
		return fmt.Sprintf("%s %s", color.CyanString("Would fix:"), result.Path)
	case StatusMissing:
		return fmt.Sprintf("%s %s not found, skipping", color.YellowString("Warning:"), result.Path)
	case StatusIgnored:
		return fmt.Sprintf("%s %s", color.HiBlackString("Ignored:"), result.Path)
	case StatusFailed:
		return fmt.Sprintf("%s %s: %v", color.RedString("Error:"), result.Path, result.Error)
	default:
		return fmt.Sprintf("%s %s", color.MagentaString("Unknown:"), result.Path)
	}
}

// NewFileFormatter selects the color formatter when stdout is a terminal and
// color is not disabled, otherwise the plain formatter. Piped output always
// gets the plain lines.
func NewFileFormatter(noColor bool) FileFormatter {
	if noColor {
		return NewPlainFormatter()
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return NewPlainFormatter()
	}
	return NewColorFormatter()
}
