package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborline/tradewatch/internal/config"
	"github.com/harborline/tradewatch/internal/dataset"
)

var (
	seedCount int
	seedSeed  int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a sample desk dataset",
	Long: `Write a generated sample desk (trades, trade details, settlements) into the
data directory. Useful for demos and for trying the dashboard before wiring
real desk exports.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 25, "Number of trades to generate")
	seedCmd.Flags().Int64Var(&seedSeed, "seed", 1, "Random seed (same seed, same desk)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dataDir := cfg.DataDir
	if flagData != "" {
		dataDir = flagData
	}

	desk := dataset.SampleDesk(seedCount, seedSeed)
	if err := dataset.Write(desk, dataDir); err != nil {
		return fmt.Errorf("writing sample desk: %w", err)
	}

	fmt.Printf("Wrote %d trades, %d details, %d settlements to %s\n",
		len(desk.Trades), len(desk.Details), len(desk.Settlements), dataDir)
	return nil
}
