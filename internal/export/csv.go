package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// DefaultFilename is the conventional download name for the roster report.
const DefaultFilename = "reporte_estudiantes.csv"

// MIMEType is the content type presentation layers should serve the
// report with.
const MIMEType = "text/csv"

// Row is one line of the roster report.
type Row struct {
	Name   string
	Grade  float64
	Status string
}

// header is the fixed first row of every report.
var header = []string{"name", "grade", "status"}

// CSV serializes rows as a comma-delimited report with a header row.
//
// Rows are written in the order given, which callers are expected to keep
// as roster insertion order. Grades are formatted with the shortest exact
// decimal representation (80 stays "80", 85.5 stays "85.5").
func CSV(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Name,
			strconv.FormatFloat(row.Grade, 'f', -1, 64),
			row.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write report row for %q: %w", row.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush report: %w", err)
	}
	return buf.Bytes(), nil
}
