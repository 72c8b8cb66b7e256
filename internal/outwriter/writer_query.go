package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lodlab/chartbench/schema"
)

// writeQueryJSON writes a query result in JSON format with its plain label added.
func writeQueryJSON(w io.Writer, result *schema.QueryResult) error {
	type JSONQueryResult struct {
		Label string `json:"label"`
		*schema.QueryResult
	}
	return writeJSON(w, JSONQueryResult{
		Label:       schema.GetPlainLabel(result.Kind),
		QueryResult: result,
	})
}

// writeQueryCSV writes a query result as one row per payload value. Raw rows
// carry a value column; aggregated rows carry bin min/max columns. Sparse
// kinds add the timestamp.
func writeQueryCSV(w io.Writer, result *schema.QueryResult, fmtFloat func(float64) string) error {
	if result.Aggregated() {
		header := []string{"series", "bin", "bin_start", "min", "max"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeAggregatedCSVRows(csvWriter, result, fmtFloat)
		})
	}
	header := []string{"series", "index", "value"}
	if result.Kind == schema.SparseRawKind {
		header = []string{"series", "index", "timestamp", "value"}
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		return writeRawCSVRows(csvWriter, result, fmtFloat)
	})
}

func writeAggregatedCSVRows(w *csv.Writer, result *schema.QueryResult, fmtFloat func(float64) string) error {
	for i, values := range result.Series {
		for b := 0; b*2+1 < len(values); b++ {
			binStart := result.Start + float64(b)*result.BinWidth
			rec := []string{
				strconv.Itoa(i),
				strconv.Itoa(b),
				fmtFloat(binStart),
				fmtFloat(float64(values[b*2])),
				fmtFloat(float64(values[b*2+1])),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRawCSVRows(w *csv.Writer, result *schema.QueryResult, fmtFloat func(float64) string) error {
	sparse := result.Kind == schema.SparseRawKind
	for i, values := range result.Series {
		for j, v := range values {
			rec := []string{strconv.Itoa(i), strconv.Itoa(j)}
			if sparse {
				if j >= len(result.Timestamps[i]) {
					return fmt.Errorf("series %d has no timestamp for index %d", i, j)
				}
				rec = append(rec, fmtFloat(result.Timestamps[i][j]))
			}
			rec = append(rec, fmtFloat(float64(v)))
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	return nil
}
