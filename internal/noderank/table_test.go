package noderank

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedFixture() []NodeRecord {
	records := []NodeRecord{
		{Node: "jp-01", RiskScore: 1, ErrorCount: 0, AvgLatencyS: 0.25, EgressIP: "1.2.3.4", Country: "JP"},
		{Node: "us-02", RiskScore: 3, ErrorCount: 1, AvgLatencyS: 0.5, EgressIP: "5.6.7.8", Country: "US"},
		{Node: "de-03", RiskScore: 9, ErrorCount: 2, AvgLatencyS: math.Inf(1), EgressIP: "9.9.9.9", Country: "DE"},
	}
	Rank(records)
	return records
}

func tableDataLines(out string) []string {
	// Drop the styled header and rule lines.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	return lines[2:]
}

func TestFormatTableOrderAndLimit(t *testing.T) {
	out := FormatTable(rankedFixture(), 2)
	lines := tableDataLines(out)

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "jp-01")
	assert.Contains(t, lines[1], "us-02")
	assert.NotContains(t, out, "de-03")
}

func TestFormatTableTopExceedsRows(t *testing.T) {
	out := FormatTable(rankedFixture(), 100)
	assert.Len(t, tableDataLines(out), 3)
}

func TestFormatTableNonPositiveTopShowsAll(t *testing.T) {
	out := FormatTable(rankedFixture(), 0)
	assert.Len(t, tableDataLines(out), 3)
}

func TestFormatTableSingleRow(t *testing.T) {
	records := []NodeRecord{{Node: "only", RiskScore: 5, AvgLatencyS: 1.5}}
	out := FormatTable(records, 10)

	lines := tableDataLines(out)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "only")
	assert.Contains(t, lines[0], "1.500")
}

func TestFormatTableInfiniteLatency(t *testing.T) {
	out := FormatTable(rankedFixture(), 0)
	assert.Contains(t, out, "inf")
}

func TestFormatLatency(t *testing.T) {
	assert.Equal(t, "0.250", formatLatency(0.25, 3))
	assert.Equal(t, "0.250000", formatLatency(0.25, 6))
	assert.Equal(t, "inf", formatLatency(math.Inf(1), 3))
}
