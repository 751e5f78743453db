// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes cleaned faculty records to tabular outputs.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/faculty-scraper/pkg/types"
)

// Columns is the stable export column order.
var Columns = []string{"Name", "College", "Email", "Subjects", "Research", "Profile"}

// WriteCSV writes one row per record to path. List-valued fields are
// serialized with their default string representation ("[a b]"), so the
// round trip is lossy for those columns: re-parsing the file recovers Name,
// College, Email, and Profile exactly, but not the list structure. Use
// WriteYAML or WriteJSON when the lists must survive.
func WriteCSV(records []types.FacultyRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := writeCSV(records, f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func writeCSV(records []types.FacultyRecord, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Name,
			rec.College,
			rec.Email,
			fmt.Sprint(rec.Subjects),
			fmt.Sprint(rec.Research),
			rec.Profile,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteYAML writes the records to path as a YAML sequence.
func WriteYAML(records []types.FacultyRecord, path string) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteJSON writes the records to path as an indented JSON array.
func WriteJSON(records []types.FacultyRecord, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// RenderTable writes a human-readable table of the records to w.
func RenderTable(records []types.FacultyRecord, w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Name", "College", "Email", "Subjects", "Research", "Profile"})
	for _, rec := range records {
		t.AppendRow(table.Row{
			rec.Name,
			rec.College,
			rec.Email,
			truncate(strings.Join(rec.Subjects, "; "), 40),
			truncate(strings.Join(rec.Research, "; "), 40),
			rec.Profile,
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
