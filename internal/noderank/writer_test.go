package noderank

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRankedCSV(t *testing.T) {
	headers := []string{"node", "risk_score", "err_tcp", "t_home_s"}
	rows := []map[string]string{
		{"node": "us-02", "risk_score": "3", "err_tcp": "refused", "t_home_s": "0.5"},
		{"node": "jp-01", "risk_score": "1", "err_tcp": "", "t_home_s": "0.25"},
	}

	records, _ := Analyze(headers, rows)
	Rank(records)

	outPath := filepath.Join(t.TempDir(), "ranked.csv")
	require.NoError(t, WriteRankedCSV(outPath, headers, records))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()

	written, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, written, 3)

	// Computed columns come first, then the surviving originals.
	assert.Equal(t, []string{"rank", "risk_score", "error_count", "avg_latency_s", "errors", "node", "err_tcp", "t_home_s"}, written[0])

	// jp-01 ranks first.
	assert.Equal(t, "1", written[1][0])
	assert.Equal(t, "jp-01", written[1][5])
	assert.Equal(t, "0.250000", written[1][3])

	assert.Equal(t, "2", written[2][0])
	assert.Equal(t, "us-02", written[2][5])
	assert.Equal(t, "tcp", written[2][4])
}

func TestWriteRankedCSVBadPath(t *testing.T) {
	err := WriteRankedCSV(filepath.Join(t.TempDir(), "missing", "out.csv"), []string{"node"}, nil)
	assert.Error(t, err)
}
