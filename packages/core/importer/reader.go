package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Row is a single CSV record keyed by header name.
type Row map[string]string

// Get returns the trimmed cell value for a column, empty when the column is
// absent from the file.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// Result is the per-run audit trail reported after a batch. Row-level
// failures land in Errors and never abort the run.
type Result struct {
	Created int
	Updated int
	Skipped int
	Errors  int
}

// readRows loads the whole file keyed by its header row. A read failure here
// is the only fatal path of an import run.
func readRows(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)

	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, column := range header {
			if i < len(record) {
				row[strings.TrimSpace(column)] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
