package outwriter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/internal/parquet"
	"github.com/lodlab/chartbench/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintBenchResults outputs benchmark results, dispatching based on the output
// format configured.
func PrintBenchResults(result *schema.BenchResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBenchJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBenchCSV(w, result, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("--output-file is required for parquet output")
		}
		steps := parquet.ConvertBenchPoints(0, result.Points)
		if err := parquet.WriteBenchStepsParquet(steps, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Printf("Exported %d benchmark steps to: %s\n", len(steps), cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBenchTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeBenchTable generates and writes the human-readable step table plus a
// totals footer.
func writeBenchTable(result *schema.BenchResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Step", "Kind", "Start", "End", "LOD", "Bins", "Samples", "Latency", "Fresh"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	limit := len(result.Points)
	if cfg.ResultLimit > 0 && cfg.ResultLimit < limit {
		limit = cfg.ResultLimit
	}

	var data [][]string
	for _, p := range result.Points[:limit] {
		label := schema.GetPlainLabel(p.Kind)
		if cfg.UseColors {
			label = contract.GetColorLabel(p.Kind)
		}
		fresh := "fresh"
		if cfg.UseColors {
			fresh = contract.GetStaleLabel(p.Stale)
		} else if p.Stale {
			fresh = "stale"
		}
		data = append(data, []string{
			strconv.Itoa(p.Step + 1),
			label,
			fmtFloat(p.Start),
			fmtFloat(p.End),
			fmtFloat(p.LOD),
			strconv.Itoa(p.Bins),
			strconv.Itoa(p.Samples),
			p.Latency.Round(time.Microsecond).String(),
			fresh,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	t := result.Totals
	if limit < len(result.Points) {
		if _, err := fmt.Fprintf(writer, "Showing first %d of %d steps\n", limit, len(result.Points)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Totals: %d queries (%s), %d stale (%.1f%%), %d bins, %d samples\n",
		t.Queries, schema.FormatKindCounts(t.KindCounts), t.Stale, schema.Percent(t.Stale, t.Queries), t.Bins, t.Samples); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Latency: avg %v, max %v. Benchmark completed in %v with %d workers\n",
		t.AvgLatency.Round(time.Microsecond), t.MaxLatency.Round(time.Microsecond), duration, result.Workers); err != nil {
		return err
	}
	return nil
}
