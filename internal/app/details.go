package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborline/tradewatch/internal/output"
	"github.com/harborline/tradewatch/internal/trading"
)

var (
	detailsLimit int
	detailsTrade string
)

var detailsCmd = &cobra.Command{
	Use:   "details",
	Short: "Ranked document reviews",
	Long: `Score every trade detail (documents and checklist lines under review)
through the detail priority engine and show them ranked by urgency.`,
	RunE: runDetails,
}

func init() {
	detailsCmd.Flags().IntVar(&detailsLimit, "limit", 20, "Maximum number of details to show")
	detailsCmd.Flags().StringVar(&detailsTrade, "trade", "", "Only show details for this trade ID")
	rootCmd.AddCommand(detailsCmd)
}

func runDetails(cmd *cobra.Command, args []string) error {
	_, desk, tuning, err := setup()
	if err != nil {
		return err
	}

	details := desk.Details
	if detailsTrade != "" {
		details = nil
		for _, d := range desk.Details {
			if d.TradeID == detailsTrade {
				details = append(details, d)
			}
		}
	}

	engine := trading.NewDetailEngine(tuning)
	ranked := engine.PrioritizeItems(details)
	ranked = filterRanked(ranked, 0, detailsLimit)

	if flagJSON {
		return printJSON(ranked)
	}

	fmt.Println(output.Section("Document Reviews"))
	fmt.Println()

	if len(ranked) == 0 {
		fmt.Println(" No document reviews found.")
		return nil
	}

	tbl := output.NewTable("#", "DETAIL", "TRADE", "DOCUMENT", "SEVERITY", "SCORE", "NEXT ACTION")
	for i, p := range ranked {
		style := output.BandStyle(engine.Buckets().Classify(p.Priority.Score))
		tbl.AddStyledRow(&style,
			fmt.Sprintf("%d", i+1),
			p.Item.ID,
			p.Item.TradeID,
			p.Item.DocumentName,
			p.Item.Severity,
			fmt.Sprintf("%.0f", p.Priority.Score),
			p.Priority.SuggestedAction,
		)
	}
	tbl.Print()
	return nil
}
