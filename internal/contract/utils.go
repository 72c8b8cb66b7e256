package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/lodlab/chartbench/schema"
)

// Color variables for console output.
var (
	RawColor          = color.New(color.FgCyan)                // rawColor marks unreduced result sets.
	AggregatedColor   = color.New(color.FgGreen)               // aggregatedColor marks binned result sets.
	SparseRawColor    = color.New(color.FgYellow)              // sparseRawColor marks timestamped unreduced sets.
	SparseBinnedColor = color.New(color.FgMagenta)             // sparseBinnedColor marks timestamped binned sets.
	StaleColor        = color.New(color.FgRed, color.Bold)     // staleColor flags superseded benchmark responses.
	PassColor         = color.New(color.FgGreen, color.Bold)   // passColor marks passing engine checks.
	FailColor         = color.New(color.FgRed, color.Bold)     // failColor marks failing engine checks.
)

// GetColorLabel returns a colored text label for console output (table).
// It uses schema.GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(kind schema.ResultKind) string {
	text := schema.GetPlainLabel(kind)

	switch kind {
	case schema.RawKind:
		return RawColor.Sprint(text)
	case schema.AggregatedKind:
		return AggregatedColor.Sprint(text)
	case schema.SparseRawKind:
		return SparseRawColor.Sprint(text)
	case schema.SparseAggregatedKind:
		return SparseBinnedColor.Sprint(text)
	default:
		return text
	}
}

// GetStaleLabel returns a colored freshness marker for benchmark step output.
func GetStaleLabel(stale bool) string {
	if stale {
		return StaleColor.Sprint("stale")
	}
	return "fresh"
}

// GetCheckLabel returns a colored pass/fail marker for engine check output.
func GetCheckLabel(passed bool) string {
	if passed {
		return PassColor.Sprint("PASS")
	}
	return FailColor.Sprint("FAIL")
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRunDBFilePath returns the path to the SQLite DB file for run storage.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".chartbench_runs.db"
	}
	return filepath.Join(homeDir, ".chartbench_runs.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
