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
)

// PrintCheckResults outputs engine check findings, dispatching based on the
// output format configured.
func PrintCheckResults(result schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"check", "passed", "detail"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, f := range result.Findings {
					if err := csvWriter.Write([]string{f.Name, strconv.FormatBool(f.Passed), f.Detail}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("check findings")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCheckTable(result, cfg, duration, w)
		}, "Wrote table")
	}
}

func writeCheckTable(result schema.CheckResult, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Check", "Result", "Detail"})

	var data [][]string
	for _, f := range result.Findings {
		status := "PASS"
		if !f.Passed {
			status = "FAIL"
		}
		if cfg.UseColors {
			status = contract.GetCheckLabel(f.Passed)
		}
		data = append(data, []string{f.Name, status, f.Detail})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if result.Passed {
		if _, err := fmt.Fprintf(writer, "All %d checks passed in %v\n", result.Total, duration); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(writer, "%d of %d checks failed (%v)\n", result.Failed, result.Total, duration); err != nil {
			return err
		}
	}
	return nil
}
