package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborline/tradewatch/internal/output"
	"github.com/harborline/tradewatch/internal/trading"
)

var (
	settlementsLimit    int
	settlementsMinScore float64
)

var settlementsCmd = &cobra.Command{
	Use:   "settlements",
	Short: "Ranked settlement inbox",
	Long: `Score every scheduled settlement through the settlement priority engine and
show them ranked by urgency. Overdue value dates, exception states, and large
notionals drive the ranking.`,
	RunE: runSettlements,
}

func init() {
	settlementsCmd.Flags().IntVar(&settlementsLimit, "limit", 20, "Maximum number of settlements to show")
	settlementsCmd.Flags().Float64Var(&settlementsMinScore, "min-score", 0, "Hide settlements scoring below this value")
	rootCmd.AddCommand(settlementsCmd)
}

func runSettlements(cmd *cobra.Command, args []string) error {
	_, desk, tuning, err := setup()
	if err != nil {
		return err
	}

	engine := trading.NewSettlementEngine(tuning)
	ranked := engine.PrioritizeItems(desk.Settlements)
	ranked = filterRanked(ranked, settlementsMinScore, settlementsLimit)

	if flagJSON {
		return printJSON(ranked)
	}

	fmt.Println(output.Section("Settlement Inbox"))
	fmt.Println()

	if len(ranked) == 0 {
		fmt.Println(" No settlements above the score threshold.")
		return nil
	}

	tbl := output.NewTable("#", "SETTLEMENT", "COUNTERPARTY", "VALUE DATE", "AMOUNT", "STATUS", "SCORE", "NEXT ACTION")
	for i, p := range ranked {
		style := output.BandStyle(engine.Buckets().Classify(p.Priority.Score))
		tbl.AddStyledRow(&style,
			fmt.Sprintf("%d", i+1),
			p.Item.ID,
			p.Item.Counterparty,
			p.Item.ValueDate,
			formatAmount(p.Item.Amount, p.Item.Currency),
			string(p.Item.Status),
			fmt.Sprintf("%.0f", p.Priority.Score),
			p.Priority.SuggestedAction,
		)
	}
	tbl.Print()
	return nil
}

// formatAmount renders a notional in millions for table display.
func formatAmount(amount float64, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	return fmt.Sprintf("%.1fM %s", amount/1_000_000, currency)
}
