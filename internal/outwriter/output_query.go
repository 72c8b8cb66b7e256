package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintQueryResult outputs a single query result, dispatching based on the
// output format configured.
func PrintQueryResult(result *schema.QueryResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeQueryJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeQueryCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("query results")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeQueryTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeQueryTable writes one row per series with summary stats and a short
// preview of the payload values.
func writeQueryTable(result *schema.QueryResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Series", "Kind", "Values", "Min", "Max", "Preview"}
	table.Header(headers)
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	previewWidth := getMaxValuePreviewWidth(cfg)
	var data [][]string
	for i, values := range result.Series {
		label := schema.GetPlainLabel(result.Kind)
		if cfg.UseColors {
			label = contract.GetColorLabel(result.Kind)
		}
		mn, mx := seriesMinMax(values)
		data = append(data, []string{
			strconv.Itoa(i),
			label,
			strconv.Itoa(len(values)),
			fmtFloat(mn),
			fmtFloat(mx),
			formatValuePreview(values, fmtFloat, previewWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if result.Aggregated() {
		if _, err := fmt.Fprintf(writer, "Range [%s, %s) at bin width %s: %d bins per series\n",
			fmtFloat(result.Start), fmtFloat(result.End), fmtFloat(result.BinWidth), result.BinCount()); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(writer, "Range [%s, %s) at full resolution: %d values total\n",
			fmtFloat(result.Start), fmtFloat(result.End), result.SampleCount()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Query completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// seriesMinMax scans a payload slice. Aggregated payloads interleave min/max
// pairs, but the overall min/max is the same either way.
func seriesMinMax(values []float32) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mn, mx := values[0], values[0]
	for _, v := range values[1:] {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	return float64(mn), float64(mx)
}

// formatValuePreview renders the leading payload values, truncated to maxWidth.
func formatValuePreview(values []float32, fmtFloat func(float64) string, maxWidth int) string {
	var b strings.Builder
	for i, v := range values {
		part := fmtFloat(float64(v))
		if i > 0 {
			part = " " + part
		}
		if b.Len()+len(part) > maxWidth-3 {
			b.WriteString("...")
			break
		}
		b.WriteString(part)
	}
	return b.String()
}
