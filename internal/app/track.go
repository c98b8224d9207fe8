package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborline/tradewatch/internal/config"
	"github.com/harborline/tradewatch/internal/output"
	"github.com/harborline/tradewatch/internal/priority"
	"github.com/harborline/tradewatch/internal/store"
	"github.com/harborline/tradewatch/internal/trading"
)

var (
	trackCompare int
	trackTop     int
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Snapshot stats and compare over time",
	Long: `Compute the desk's urgency distribution, store a new snapshot, and compare
against a previous snapshot to show how each bucket moved.`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().IntVar(&trackCompare, "compare", 1, "Compare against Nth previous snapshot (1 = most recent)")
	trackCmd.Flags().IntVar(&trackTop, "top", 10, "Number of top items to persist per domain")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	_, desk, tuning, err := setup()
	if err != nil {
		return err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	// The previous snapshot must be resolved before the new one is
	// created, or the offsets shift under us.
	previous, err := db.GetSnapshotN(trackCompare)
	if err != nil {
		return fmt.Errorf("finding previous snapshot: %w", err)
	}

	snapshotID, err := db.CreateSnapshot("track", appVersion)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	tradeEngine := trading.NewTradeEngine(tuning)
	detailEngine := trading.NewDetailEngine(tuning)
	settlementEngine := trading.NewSettlementEngine(tuning)

	if err := persistDomain(db, snapshotID, "trades", tradeEngine, desk.Trades,
		func(t trading.Trade) string { return t.ID }); err != nil {
		return err
	}
	if err := persistDomain(db, snapshotID, "details", detailEngine, desk.Details,
		func(d trading.TradeDetail) string { return d.ID }); err != nil {
		return err
	}
	if err := persistDomain(db, snapshotID, "settlements", settlementEngine, desk.Settlements,
		func(s trading.Settlement) string { return s.ID }); err != nil {
		return err
	}

	current, err := db.GetInboxStats(snapshotID)
	if err != nil {
		return fmt.Errorf("reading snapshot stats: %w", err)
	}

	if previous == nil {
		if flagJSON {
			return printJSON(current)
		}
		fmt.Println(output.Section("Snapshot Stored"))
		fmt.Println()
		fmt.Println(" First snapshot recorded; run track again to see trends.")
		return nil
	}

	prevStats, err := db.GetInboxStats(previous.ID)
	if err != nil {
		return fmt.Errorf("reading previous stats: %w", err)
	}

	deltas := store.DiffStats(prevStats, current)

	if flagJSON {
		return printJSON(deltas)
	}

	fmt.Println(output.Section(fmt.Sprintf("Trend vs snapshot #%d (%s)", previous.ID, previous.TakenAt.Format("2006-01-02 15:04"))))
	fmt.Println()

	tbl := output.NewTable("DOMAIN", "BUCKET", "BEFORE", "NOW", "TREND")
	for _, d := range deltas {
		tbl.AddRow(d.Domain, d.Bucket,
			fmt.Sprintf("%d", d.Previous),
			fmt.Sprintf("%d", d.Current),
			output.TrendArrow(d.Delta),
		)
	}
	tbl.Print()
	return nil
}

// persistDomain ranks one domain's items, then stores its bucket counts and
// its top-ranked items under the snapshot.
func persistDomain[T any](db *store.DB, snapshotID int64, domain string, engine *priority.Engine[T], items []T, id func(T) string) error {
	ranked := engine.PrioritizeItems(items)
	stats := engine.Summarize(ranked)

	if err := db.InsertInboxStats(&store.InboxStatsRow{
		SnapshotID: snapshotID,
		Domain:     domain,
		Critical:   stats.Critical,
		High:       stats.High,
		Medium:     stats.Medium,
		Low:        stats.Low,
		Total:      stats.Total,
	}); err != nil {
		return fmt.Errorf("inserting %s stats: %w", domain, err)
	}

	top := ranked
	if trackTop > 0 && len(top) > trackTop {
		top = top[:trackTop]
	}
	for _, p := range top {
		if err := db.InsertItemScore(&store.ItemScoreRow{
			SnapshotID:      snapshotID,
			Domain:          domain,
			ItemID:          id(p.Item),
			Score:           p.Priority.Score,
			Band:            engine.Buckets().Classify(p.Priority.Score).String(),
			TopReason:       topReasonLabel(p.Priority),
			SuggestedAction: p.Priority.SuggestedAction,
		}); err != nil {
			return fmt.Errorf("inserting %s item score: %w", domain, err)
		}
	}
	return nil
}
