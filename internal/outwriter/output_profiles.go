package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/schema"

	"github.com/olekukonko/tablewriter"
)

// PrintProfiles outputs the profile definitions, dispatching based on the
// output format configured.
func PrintProfiles(model schema.ProfilesRenderModel, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"Profile", "Purpose", "Factors", "Sparse"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				return writeProfilesCSVRows(csvWriter, model)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("profile definitions")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfilesTable(model, cfg, w)
		}, "Wrote table")
	}
}

func writeProfilesCSVRows(w *csv.Writer, model schema.ProfilesRenderModel) error {
	for _, p := range model.Profiles {
		record := []string{
			p.Name,
			p.Purpose,
			strings.Join(p.Factors, "|"),
			strconv.FormatBool(p.Sparse),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}

func writeProfilesTable(model schema.ProfilesRenderModel, cfg *contract.Config, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "%s\n%s\n\n", model.Title, model.Description); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Profile", "Purpose", "Factors", "Timestamps"})

	var data [][]string
	for _, p := range model.Profiles {
		name := p.Name
		if cfg.UseEmojis {
			name = getDisplayNameForProfile(p.Name)
		}
		ts := "dense"
		if p.Sparse {
			ts = "sparse"
		}
		data = append(data, []string{
			name,
			p.Purpose,
			strings.Join(p.Factors, ", "),
			ts,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// getDisplayNameForProfile returns the display name with emoji for a profile.
func getDisplayNameForProfile(name string) string {
	switch name {
	case "walk":
		return "🚶 WALK"
	case "sine":
		return "🌊 SINE"
	case "pulse":
		return "⚡ PULSE"
	case "gradient":
		return "📐 GRADIENT"
	case "sparse":
		return "🕳️  SPARSE"
	default:
		return strings.ToUpper(name)
	}
}
