package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborline/tradewatch/internal/output"
	"github.com/harborline/tradewatch/internal/priority"
	"github.com/harborline/tradewatch/internal/trading"
)

var (
	inboxLimit    int
	inboxMinScore float64
)

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Ranked trade inbox",
	Long: `Score every trade on the desk through the trade priority engine and show
them ranked by urgency, with the dominant reason and a suggested next action
for each.`,
	RunE: runInbox,
}

func init() {
	inboxCmd.Flags().IntVar(&inboxLimit, "limit", 20, "Maximum number of trades to show")
	inboxCmd.Flags().Float64Var(&inboxMinScore, "min-score", 0, "Hide trades scoring below this value")
	rootCmd.AddCommand(inboxCmd)
}

func runInbox(cmd *cobra.Command, args []string) error {
	_, desk, tuning, err := setup()
	if err != nil {
		return err
	}

	engine := trading.NewTradeEngine(tuning)
	ranked := engine.PrioritizeItems(desk.Trades)
	ranked = filterRanked(ranked, inboxMinScore, inboxLimit)

	if flagJSON {
		return printJSON(ranked)
	}

	fmt.Println(output.Section("Trade Inbox"))
	fmt.Println()

	if len(ranked) == 0 {
		fmt.Println(" No trades above the score threshold.")
		return nil
	}

	tbl := output.NewTable("#", "TRADE", "BORROWER", "STATUS", "SCORE", "TOP REASON", "NEXT ACTION")
	for i, p := range ranked {
		style := output.BandStyle(engine.Buckets().Classify(p.Priority.Score))
		tbl.AddStyledRow(&style,
			fmt.Sprintf("%d", i+1),
			p.Item.ID,
			p.Item.Borrower,
			string(p.Item.Status),
			fmt.Sprintf("%.0f", p.Priority.Score),
			topReasonLabel(p.Priority),
			p.Priority.SuggestedAction,
		)
	}
	tbl.Print()
	return nil
}

// filterRanked drops items below minScore and truncates to limit. Items
// arrive sorted, so truncation keeps the most urgent.
func filterRanked[T any](ranked []priority.Prioritized[T], minScore float64, limit int) []priority.Prioritized[T] {
	filtered := ranked
	if minScore > 0 {
		filtered = nil
		for _, p := range ranked {
			if p.Priority.Score >= minScore {
				filtered = append(filtered, p)
			}
		}
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}
