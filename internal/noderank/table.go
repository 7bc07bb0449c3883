package noderank

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	tableRuleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// FormatTable renders the ranked records as a console table. top limits the
// number of rows when positive; zero or negative shows everything.
func FormatTable(records []NodeRecord, top int) string {
	shown := records
	if top > 0 && top < len(shown) {
		shown = shown[:top]
	}

	var b strings.Builder
	header := " # | risk | err | avg_s  | egress_ip       | country/region     | node"
	b.WriteString(tableHeaderStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(tableRuleStyle.Render(strings.Repeat("-", 110)))
	b.WriteString("\n")

	for i, r := range shown {
		fmt.Fprintf(&b, "%2d | %-4d | %-3d | %-6s | %-15s | %-18s | %s\n",
			i+1,
			r.RiskScore,
			r.ErrorCount,
			formatLatency(r.AvgLatencyS, 3),
			r.EgressIP,
			r.Location(),
			r.Node)
	}

	return b.String()
}

// formatLatency formats a latency value, spelling +Inf as "inf".
func formatLatency(v float64, precision int) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.*f", precision, v)
}
