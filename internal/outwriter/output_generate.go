package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintGenerateResult outputs generation summary stats, dispatching based on
// the output format configured.
func PrintGenerateResult(result *schema.GenerateResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"series", "count", "min", "max", "mean", "first", "last"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				return writeGenerateCSVRows(csvWriter, result, fmtFloat, intFmt)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("generation stats")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGenerateTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

func writeGenerateCSVRows(w *csv.Writer, result *schema.GenerateResult, fmtFloat func(float64) string, intFmt string) error {
	for _, s := range result.Stats {
		rec := []string{
			fmt.Sprintf(intFmt, s.Index),
			fmt.Sprintf(intFmt, s.Count),
			fmtFloat(s.Min),
			fmtFloat(s.Max),
			fmtFloat(s.Mean),
			fmtFloat(s.First),
			fmtFloat(s.Last),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeGenerateTable generates and writes the human-readable table.
func writeGenerateTable(result *schema.GenerateResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Series", "Count", "Min", "Max", "Mean", "First", "Last"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range result.Stats {
		data = append(data, []string{
			strconv.Itoa(s.Index),
			strconv.Itoa(s.Count),
			fmtFloat(s.Min),
			fmtFloat(s.Max),
			fmtFloat(s.Mean),
			fmtFloat(s.First),
			fmtFloat(s.Last),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	kind := "dense"
	if result.Sparse {
		kind = fmt.Sprintf("sparse, ~%.0fms spacing", result.SampleRate)
	}
	if _, err := fmt.Fprintf(writer, "Generated %d x %d %s series (%s), domain [0, %s]\n",
		result.NumSeries, result.NumPoints, result.Profile, kind, fmtFloat(result.DomainMax)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Generation completed in %v with seed %d\n", duration, result.Seed); err != nil {
		return err
	}
	return nil
}
