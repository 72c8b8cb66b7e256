package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintComparisonResults outputs comparison results, dispatching based on the
// output format configured.
func PrintComparisonResults(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"metric", "unit", "before", "after", "delta"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				return writeComparisonCSVRows(csvWriter, result, fmtFloat)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("comparison results")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

func writeComparisonCSVRows(w *csv.Writer, result schema.ComparisonResult, fmtFloat func(float64) string) error {
	for _, d := range result.Details {
		rec := []string{
			d.Metric,
			d.Unit,
			fmtFloat(d.Before),
			fmtFloat(d.After),
			fmtFloat(d.Delta),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeComparisonTable writes the metrics in a custom comparison format.
func writeComparisonTable(result schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Before", "After", "Delta"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var red, green, yellow func(...any) string
	if cfg.UseColors {
		red = color.New(color.FgRed).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	} else {
		red = fmt.Sprint
		green = fmt.Sprint
		yellow = fmt.Sprint
	}

	var data [][]string
	for _, d := range result.Details {
		var deltaStr string
		switch {
		case d.Delta > 0:
			// Explicitly add + sign
			deltaStr = red(fmt.Sprintf("+%.*f ▲", cfg.Precision, d.Delta))
		case d.Delta < 0:
			// Keeps the - sign from the float
			deltaStr = green(fmt.Sprintf("%.*f ▼", cfg.Precision, d.Delta))
		default:
			deltaStr = yellow(fmt.Sprintf("%.*f", cfg.Precision, 0.0))
		}

		name := d.Metric
		if d.Unit != "" {
			name = fmt.Sprintf("%s (%s)", d.Metric, d.Unit)
		}
		data = append(data, []string{
			name,
			fmtFloat(d.Before),
			fmtFloat(d.After),
			deltaStr,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	s := result.Summary
	if _, err := fmt.Fprintf(writer, "Net: %+.*f ms avg latency, %+d bins, %+d stale (%s vs %s, %s scenario)\n",
		cfg.Precision, s.NetLatencyDeltaMs, s.NetBinsDelta, s.NetStaleDelta,
		result.TargetProfile, result.BaseProfile, result.Scenario); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Comparison completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
