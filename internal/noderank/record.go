// Package noderank ranks nodes from a node-checker CSV report by
// (risk_score, error_count, avg_latency_s), lowest first.
package noderank

import (
	"math"
	"strconv"
	"strings"
)

// NodeRecord is one analyzed row of the report.
type NodeRecord struct {
	Node        string
	EgressIP    string
	Country     string
	Region      string
	Org         string
	RiskScore   int
	ErrorCount  int     // number of non-empty err_* columns
	Errors      string  // comma-joined err_* keys that fired
	AvgLatencyS float64 // mean of the t_*_s columns; +Inf when none parse

	raw map[string]string // original CSV row, kept for export
}

// Location returns "country/region" with empty parts trimmed.
func (r NodeRecord) Location() string {
	return strings.Trim(r.Country+"/"+r.Region, "/")
}

// toFloat parses a numeric cell. Blank cells and the usual null spellings
// come back as NaN rather than an error; a malformed cell never aborts a run.
func toFloat(s string) float64 {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nan", "none", "null":
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// malformedNumber reports whether a cell holds something that was meant to be
// a number but does not parse. Blank cells and null spellings are not
// malformed, they are absent.
func malformedNumber(s string) bool {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nan", "none", "null":
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err != nil
}

// toInt parses a numeric cell as an integer, treating NaN as 0.
func toInt(s string) int {
	f := toFloat(s)
	if math.IsNaN(f) {
		return 0
	}
	return int(f)
}
