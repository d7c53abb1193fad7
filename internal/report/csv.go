// Package report exports timesheet data as an Excel-compatible CSV file.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"ecotech/internal/model"
)

// Header is the fixed column set of the timesheet report.
var Header = []string{"ID", "Empleado ID", "Proyecto ID", "Fecha", "Horas"}

// WriteTimesheet writes the report header plus one row per time entry.
func WriteTimesheet(w io.Writer, entries []*model.TimeEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			strconv.FormatInt(e.ID, 10),
			strconv.FormatInt(e.EmployeeID, 10),
			strconv.FormatInt(e.ProjectID, 10),
			e.Date,
			strconv.FormatFloat(e.Hours, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing report row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportTimesheet writes the report to a file at path.
func ExportTimesheet(path string, entries []*model.TimeEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := WriteTimesheet(f, entries); err != nil {
		return fmt.Errorf("exporting report to %s: %w", path, err)
	}
	return nil
}
