package noderank

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// ReadRows reads a report CSV and returns its header row plus one
// column-name-keyed map per data row. A UTF-8 BOM (common in Excel exports)
// is stripped from the first header.
func ReadRows(path string) ([]string, []map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Rows may be ragged; missing cells read as empty strings below.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV %s: %w", path, err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, nil, fmt.Errorf("CSV %s has no header row", path)
	}

	headers := records[0]
	headers[0] = strings.TrimPrefix(headers[0], "\ufeff")

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return headers, rows, nil
}
