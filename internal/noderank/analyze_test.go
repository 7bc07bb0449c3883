package noderank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDerivesFields(t *testing.T) {
	headers := []string{"node", "egress_ip", "country", "region", "org", "risk_score", "err_tcp", "err_tls", "t_home_s", "t_cdn_s"}
	rows := []map[string]string{
		{
			"node": "jp-01", "egress_ip": "1.2.3.4", "country": "JP", "region": "Tokyo", "org": "ExampleNet",
			"risk_score": "12", "err_tcp": "", "err_tls": "handshake timeout",
			"t_home_s": "0.25", "t_cdn_s": "0.35",
		},
	}

	records, warnings := Analyze(headers, rows)
	require.Len(t, records, 1)
	assert.Empty(t, warnings)

	r := records[0]
	assert.Equal(t, "jp-01", r.Node)
	assert.Equal(t, 12, r.RiskScore)
	assert.Equal(t, 1, r.ErrorCount)
	assert.Equal(t, "tls", r.Errors)
	assert.InDelta(t, 0.3, r.AvgLatencyS, 1e-9)
	assert.Equal(t, "JP/Tokyo", r.Location())
}

func TestAnalyzeMissingFieldsAreTolerated(t *testing.T) {
	headers := []string{"node", "risk_score", "t_home_s"}
	rows := []map[string]string{
		{"node": "  ", "risk_score": "", "t_home_s": "nan"},
	}

	records, warnings := Analyze(headers, rows)
	require.Len(t, records, 1)
	assert.Empty(t, warnings, "blank and nan cells are absent, not malformed")

	r := records[0]
	assert.Equal(t, "(unknown)", r.Node)
	assert.Equal(t, 0, r.RiskScore)
	assert.True(t, math.IsInf(r.AvgLatencyS, 1), "no latency samples ranks as +Inf")
}

func TestAnalyzeWarnsOnMalformedNumbers(t *testing.T) {
	headers := []string{"node", "risk_score", "t_home_s"}
	rows := []map[string]string{
		{"node": "bad-01", "risk_score": "high", "t_home_s": "fast"},
		{"node": "ok-01", "risk_score": "3", "t_home_s": "0.5"},
	}

	records, warnings := Analyze(headers, rows)
	require.Len(t, records, 2)
	assert.Len(t, warnings, 2)

	// The malformed row is coerced, not dropped.
	assert.Equal(t, 0, records[0].RiskScore)
	assert.True(t, math.IsInf(records[0].AvgLatencyS, 1))
}

func TestAnalyzeOrgFallsBackToDomain(t *testing.T) {
	headers := []string{"node", "domain", "risk_score"}
	rows := []map[string]string{
		{"node": "n1", "domain": "example.org", "risk_score": "1"},
	}

	records, _ := Analyze(headers, rows)
	require.Len(t, records, 1)
	assert.Equal(t, "example.org", records[0].Org)
}

func TestRankOrdering(t *testing.T) {
	records := []NodeRecord{
		{Node: "A", RiskScore: 1, ErrorCount: 2, AvgLatencyS: 0.5},
		{Node: "B", RiskScore: 1, ErrorCount: 1, AvgLatencyS: 0.9},
		{Node: "C", RiskScore: 0, ErrorCount: 9, AvgLatencyS: 9.9},
	}

	Rank(records)

	// Risk dominates; error count breaks the risk tie.
	require.Equal(t, "C", records[0].Node)
	require.Equal(t, "B", records[1].Node)
	require.Equal(t, "A", records[2].Node)
}

func TestRankLatencyBreaksFinalTie(t *testing.T) {
	records := []NodeRecord{
		{Node: "slow", RiskScore: 1, ErrorCount: 1, AvgLatencyS: 0.8},
		{Node: "fast", RiskScore: 1, ErrorCount: 1, AvgLatencyS: 0.2},
		{Node: "dead", RiskScore: 1, ErrorCount: 1, AvgLatencyS: math.Inf(1)},
	}

	Rank(records)

	assert.Equal(t, "fast", records[0].Node)
	assert.Equal(t, "slow", records[1].Node)
	assert.Equal(t, "dead", records[2].Node)
}

func TestRankIsStableOnFullTies(t *testing.T) {
	records := []NodeRecord{
		{Node: "first", RiskScore: 2, ErrorCount: 0, AvgLatencyS: 0.4},
		{Node: "second", RiskScore: 2, ErrorCount: 0, AvgLatencyS: 0.4},
		{Node: "third", RiskScore: 2, ErrorCount: 0, AvgLatencyS: 0.4},
	}

	Rank(records)

	assert.Equal(t, "first", records[0].Node)
	assert.Equal(t, "second", records[1].Node)
	assert.Equal(t, "third", records[2].Node)
}
