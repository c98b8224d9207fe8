package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborline/tradewatch/internal/output"
	"github.com/harborline/tradewatch/internal/priority"
	"github.com/harborline/tradewatch/internal/trading"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Urgency distribution across the desk",
	Long: `Summarize how the desk's trades, document reviews, and settlements are
distributed across the urgency buckets (critical, high, medium, low).`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// deskStats is the stats payload for --json output.
type deskStats struct {
	Trades      priority.Stats `json:"trades"`
	Details     priority.Stats `json:"trade_details"`
	Settlements priority.Stats `json:"settlements"`
}

func runStats(cmd *cobra.Command, args []string) error {
	_, desk, tuning, err := setup()
	if err != nil {
		return err
	}

	stats := computeDeskStats(desk.Trades, desk.Details, desk.Settlements, tuning)

	if flagJSON {
		return printJSON(stats)
	}

	renderStats("Trades", stats.Trades)
	renderStats("Document Reviews", stats.Details)
	renderStats("Settlements", stats.Settlements)
	return nil
}

func computeDeskStats(trades []trading.Trade, details []trading.TradeDetail, settlements []trading.Settlement, tuning trading.Tuning) deskStats {
	tradeEngine := trading.NewTradeEngine(tuning)
	detailEngine := trading.NewDetailEngine(tuning)
	settlementEngine := trading.NewSettlementEngine(tuning)

	return deskStats{
		Trades:      tradeEngine.Summarize(tradeEngine.PrioritizeItems(trades)),
		Details:     detailEngine.Summarize(detailEngine.PrioritizeItems(details)),
		Settlements: settlementEngine.Summarize(settlementEngine.PrioritizeItems(settlements)),
	}
}

func renderStats(title string, stats priority.Stats) {
	fmt.Println(output.Section(title))
	fmt.Println()

	rows := []struct {
		band  priority.Band
		count int
	}{
		{priority.BandCritical, stats.Critical},
		{priority.BandHigh, stats.High},
		{priority.BandMedium, stats.Medium},
		{priority.BandLow, stats.Low},
	}
	for _, r := range rows {
		fmt.Printf(" %-9s %s\n", r.band, output.DistributionBar(r.band, r.count, stats.Total, 24))
	}
	fmt.Printf(" %-9s %d\n", "total", stats.Total)
	fmt.Println()
}
