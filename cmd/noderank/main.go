package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chosenoffset.com/hopper/internal/noderank"
)

var (
	csvPath string
	topN    int
	outPath string
)

var rootCmd = &cobra.Command{
	Use:   "noderank",
	Short: "Rank nodes from a node-checker CSV report",
	Long: `Reads a CSV exported by the node checker and ranks nodes by
risk_score, then error_count, then avg_latency_s (lower is better in all
three). Prints a table of the top nodes and optionally writes a ranked CSV.`,
	RunE:          runRank,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "path to the report CSV")
	rootCmd.Flags().IntVar(&topN, "top", 10, "show top N nodes (<= 0 shows all)")
	rootCmd.Flags().StringVar(&outPath, "out", "", "write ranked CSV to this path (optional)")
	rootCmd.MarkFlagRequired("csv")
}

func runRank(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	headers, rows, err := noderank.ReadRows(csvPath)
	if err != nil {
		return err
	}
	log.Infow("loaded report", "path", csvPath, "rows", len(rows))

	records, warnings := noderank.Analyze(headers, rows)
	for _, w := range warnings {
		log.Warnw("malformed cell", "detail", w)
	}

	noderank.Rank(records)
	fmt.Print(noderank.FormatTable(records, topN))

	if outPath != "" {
		if err := noderank.WriteRankedCSV(outPath, headers, records); err != nil {
			return err
		}
		log.Infow("wrote ranked CSV", "path", outPath)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
