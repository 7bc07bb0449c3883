package noderank

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// extraColumns are the computed columns prepended to the ranked export.
var extraColumns = []string{"rank", "risk_score", "error_count", "avg_latency_s", "errors"}

// WriteRankedCSV writes the ranked records to path, with the computed columns
// in front of the surviving original columns.
func WriteRankedCSV(path string, originalHeaders []string, records []NodeRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output CSV %s: %w", path, err)
	}
	defer f.Close()

	extras := make(map[string]bool, len(extraColumns))
	for _, c := range extraColumns {
		extras[c] = true
	}

	headers := append([]string{}, extraColumns...)
	for _, h := range originalHeaders {
		if !extras[h] {
			headers = append(headers, h)
		}
	}

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range records {
		row := make([]string, 0, len(headers))
		for _, h := range headers {
			switch h {
			case "rank":
				row = append(row, strconv.Itoa(i+1))
			case "risk_score":
				row = append(row, strconv.Itoa(r.RiskScore))
			case "error_count":
				row = append(row, strconv.Itoa(r.ErrorCount))
			case "avg_latency_s":
				row = append(row, formatLatency(r.AvgLatencyS, 6))
			case "errors":
				row = append(row, r.Errors)
			default:
				row = append(row, r.raw[h])
			}
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output CSV: %w", err)
	}
	return nil
}
