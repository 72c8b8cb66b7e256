package schema

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// FormatKindCounts formats a kind histogram as "aggregated=12, raw=3" with
// keys in stable sorted order.
func FormatKindCounts(counts map[ResultKind]int) string {
	if len(counts) == 0 {
		return ""
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[ResultKind(k)]))
	}
	return strings.Join(parts, ", ")
}

// DurationMs converts a duration to fractional milliseconds.
func DurationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Percent returns part/total as a percentage, or zero when total is zero.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
