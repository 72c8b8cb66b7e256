package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lodlab/chartbench/schema"
)

// writeBenchJSON writes benchmark results in JSON format with step labels added.
func writeBenchJSON(w io.Writer, result *schema.BenchResult) error {
	type JSONBenchResult struct {
		*schema.BenchResult
		Points []schema.EnrichedBenchPoint `json:"points"`
	}
	return writeJSON(w, JSONBenchResult{
		BenchResult: result,
		Points:      schema.EnrichBenchPoints(result.Points),
	})
}

// writeBenchCSV writes one row per benchmark step.
func writeBenchCSV(w io.Writer, result *schema.BenchResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"step",
		"scenario",
		"kind",
		"label",
		"start",
		"end",
		"lod",
		"bins",
		"samples",
		"latency_ms",
		"stale",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, p := range result.Points {
			rec := []string{
				fmt.Sprintf(intFmt, p.Step+1),
				string(p.Scenario),
				string(p.Kind),
				schema.GetPlainLabel(p.Kind),
				fmtFloat(p.Start),
				fmtFloat(p.End),
				fmtFloat(p.LOD),
				fmt.Sprintf(intFmt, p.Bins),
				fmt.Sprintf(intFmt, p.Samples),
				fmtFloat(schema.DurationMs(p.Latency)),
				strconv.FormatBool(p.Stale),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
