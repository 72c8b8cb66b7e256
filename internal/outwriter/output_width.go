// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/lodlab/chartbench/internal/contract"
	"golang.org/x/term"
)

// getMaxValuePreviewWidth calculates the maximum width for the value preview
// column in table output based on terminal width.
func getMaxValuePreviewWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (series index, counts, min/max/mean)
	// plus table borders and padding.
	available := termWidth - 55
	if available < 16 {
		return 16
	}
	if available > 72 {
		return 72
	}
	return available
}
