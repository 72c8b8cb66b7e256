// Package main provides a performance sweep driver for the chartbench CLI.
// It measures wall-clock execution times across profiles, scenarios and data
// sizes, running each combination multiple times, treating the first
// successful run as cold and averaging the rest as warm, generating CSV
// output for performance analysis and documentation.
//
// Prerequisites:
// - chartbench binary installed and available in PATH
//
// Usage: go run benchmark/main.go [output-csv]
//
//	output-csv: Path to write sweep results (default: benchmark_results.csv)
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// SweepResult holds the result of one profile/scenario/size combination.
type SweepResult struct {
	Profile  string
	Scenario string
	Points   int
	ColdTime string
	WarmTime string
}

// SweepConfig holds configuration for the sweep run.
type SweepConfig struct {
	OutputPath string
	Timeout    time.Duration
	Steps      int
	Runs       int
	Profiles   []string
	Scenarios  []string
	PointSizes []int
}

func main() {
	outputPath := "benchmark_results.csv"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	config := SweepConfig{
		OutputPath: outputPath,
		Timeout:    5 * time.Minute,
		Steps:      32,
		Runs:       4,
		Profiles:   []string{"walk", "sine", "pulse", "gradient"},
		Scenarios:  []string{"pan", "zoom", "mixed"},
		PointSizes: []int{100000, 1000000, 10000000},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runSweep(config)

	if err := saveResults(config.OutputPath, results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the chartbench binary exists.
func checkPrerequisites() error {
	if _, err := exec.LookPath("chartbench"); err != nil {
		return fmt.Errorf("chartbench binary not found in PATH")
	}
	return nil
}

// runSweep executes all benchmark combinations.
func runSweep(config SweepConfig) []SweepResult {
	var results []SweepResult

	combos := len(config.Profiles)*len(config.Scenarios) + len(config.PointSizes)
	fmt.Printf("Starting sweep: %d combinations, %v timeout, %d runs each\n",
		combos, config.Timeout, config.Runs)

	// Dense profiles across scenarios at the default size
	for _, profile := range config.Profiles {
		for _, scenario := range config.Scenarios {
			result := runCombo(config, profile, scenario, config.PointSizes[0])
			results = append(results, result)
		}
	}

	// Sparse profile only supports timestamped panning
	for _, points := range config.PointSizes {
		result := runCombo(config, "sparse", "sparsepan", points)
		results = append(results, result)
	}

	return results
}

// runCombo runs one profile/scenario/size combination and aggregates timings.
func runCombo(config SweepConfig, profile, scenario string, points int) SweepResult {
	fmt.Printf("Running %s/%s at %d points (%d runs)\n", profile, scenario, points, config.Runs)

	times := runBenchmark(config, profile, scenario, points)

	coldTime := "TIMEOUT"
	warmTime := "TIMEOUT"
	if len(times) > 0 {
		coldTime = fmt.Sprintf("%.3fs", times[0])
	}
	if len(times) > 1 {
		var sum float64
		for _, t := range times[1:] {
			sum += t
		}
		warmTime = fmt.Sprintf("%.3fs", sum/float64(len(times)-1))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTime, warmTime)

	return SweepResult{
		Profile:  profile,
		Scenario: scenario,
		Points:   points,
		ColdTime: coldTime,
		WarmTime: warmTime,
	}
}

// runBenchmark executes a chartbench bench command multiple times and returns
// the wall-clock seconds of each successful run.
func runBenchmark(config SweepConfig, profile, scenario string, points int) []float64 {
	args := []string{
		"bench",
		"--profile", profile,
		"--scenario", scenario,
		"--points", fmt.Sprintf("%d", points),
		"--steps", fmt.Sprintf("%d", config.Steps),
		"--latency", "0",
		"--run-backend", "none",
	}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("chartbench", args...)

		done := make(chan bool)
		var cmdErr error

		go func() {
			_, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	return times
}

// saveResults writes the sweep results to a CSV file.
func saveResults(path string, results []SweepResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"profile", "scenario", "points", "cold_time", "warm_time"}); err != nil {
		return err
	}
	for _, r := range results {
		rec := []string{r.Profile, r.Scenario, fmt.Sprintf("%d", r.Points), r.ColdTime, r.WarmTime}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// printSummary prints a human-readable summary of the sweep.
func printSummary(results []SweepResult) {
	fmt.Println("\nSweep complete:")
	for _, r := range results {
		fmt.Printf("  %-8s %-9s %9d points  cold=%s warm=%s\n",
			r.Profile, r.Scenario, r.Points, r.ColdTime, r.WarmTime)
	}
}
