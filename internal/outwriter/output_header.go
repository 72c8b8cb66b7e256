package outwriter

import (
	"fmt"

	"github.com/lodlab/chartbench/internal/contract"
)

// LogBenchHeader prints a concise, 2-line header for a benchmark run.
func LogBenchHeader(cfg *contract.Config) {
	if cfg.UseEmojis {
		fmt.Printf("📈 Profile: %s (Scenario: %s)\n", cfg.Profile, cfg.Scenario)
		fmt.Printf("⚙️  Series: %d x %d points, seed %d, %d workers, latency %v\n",
			cfg.NumSeries, cfg.NumPoints, cfg.Seed, cfg.Workers, cfg.Latency)
	} else {
		fmt.Printf("Profile: %s (Scenario: %s)\n", cfg.Profile, cfg.Scenario)
		fmt.Printf("Series: %d x %d points, seed %d, %d workers, latency %v\n",
			cfg.NumSeries, cfg.NumPoints, cfg.Seed, cfg.Workers, cfg.Latency)
	}
}

// LogCompareHeader prints a header for comparison runs.
func LogCompareHeader(cfg *contract.Config) {
	if cfg.UseEmojis {
		fmt.Printf("📊 Comparing: %s ↔ %s (Scenario: %s)\n", cfg.BaseProfile, cfg.TargetProfile, cfg.Scenario)
	} else {
		fmt.Printf("Comparing: %s <-> %s (Scenario: %s)\n", cfg.BaseProfile, cfg.TargetProfile, cfg.Scenario)
	}
	fmt.Printf("Series: %d x %d points, seed %d, %d steps\n",
		cfg.NumSeries, cfg.NumPoints, cfg.Seed, cfg.Steps)
}
