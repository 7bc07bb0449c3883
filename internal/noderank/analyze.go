package noderank

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Analyze derives a NodeRecord from each raw row. error_count is the number
// of non-empty err_* columns; avg_latency_s is the mean of the parseable
// t_*_s columns, or +Inf when none parse (a node with no latency samples
// ranks behind any node with samples).
//
// Malformed numeric cells never abort the run; they are coerced (risk 0,
// latency sample dropped) and reported in the returned warnings.
func Analyze(headers []string, rows []map[string]string) ([]NodeRecord, []string) {
	var errCols, latCols []string
	for _, h := range headers {
		if strings.HasPrefix(h, "err_") {
			errCols = append(errCols, h)
		}
		if strings.HasPrefix(h, "t_") && strings.HasSuffix(h, "_s") {
			latCols = append(latCols, h)
		}
	}

	var warnings []string
	records := make([]NodeRecord, 0, len(rows))
	for rowIdx, row := range rows {
		node := strings.TrimSpace(row["node"])
		if node == "" {
			node = "(unknown)"
		}

		if malformedNumber(row["risk_score"]) {
			warnings = append(warnings, fmt.Sprintf("row %d (%s): risk_score %q is not numeric, using 0", rowIdx+1, node, row["risk_score"]))
		}
		for _, c := range latCols {
			if malformedNumber(row[c]) {
				warnings = append(warnings, fmt.Sprintf("row %d (%s): %s %q is not numeric, sample dropped", rowIdx+1, node, c, row[c]))
			}
		}

		org := strings.TrimSpace(row["org"])
		if org == "" {
			org = strings.TrimSpace(row["domain"])
		}

		errorCount := 0
		var errorKeys []string
		for _, c := range errCols {
			if strings.TrimSpace(row[c]) != "" {
				errorCount++
				errorKeys = append(errorKeys, strings.TrimPrefix(c, "err_"))
			}
		}

		latSum := 0.0
		latCount := 0
		for _, c := range latCols {
			v := toFloat(row[c])
			if !math.IsNaN(v) {
				latSum += v
				latCount++
			}
		}
		avgLatency := math.Inf(1)
		if latCount > 0 {
			avgLatency = latSum / float64(latCount)
		}

		records = append(records, NodeRecord{
			Node:        node,
			EgressIP:    strings.TrimSpace(row["egress_ip"]),
			Country:     strings.TrimSpace(row["country"]),
			Region:      strings.TrimSpace(row["region"]),
			Org:         org,
			RiskScore:   toInt(row["risk_score"]),
			ErrorCount:  errorCount,
			Errors:      strings.Join(errorKeys, ","),
			AvgLatencyS: avgLatency,
			raw:         row,
		})
	}

	return records, warnings
}

// Rank sorts records ascending by (risk_score, error_count, avg_latency_s).
// The sort is stable, so ties keep their original row order.
func Rank(records []NodeRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.RiskScore != b.RiskScore {
			return a.RiskScore < b.RiskScore
		}
		if a.ErrorCount != b.ErrorCount {
			return a.ErrorCount < b.ErrorCount
		}
		return a.AvgLatencyS < b.AvgLatencyS
	})
}
