package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/harborline/tradewatch/internal/config"
	"github.com/harborline/tradewatch/internal/dataset"
	"github.com/harborline/tradewatch/internal/output"
	"github.com/harborline/tradewatch/internal/priority"
	"github.com/harborline/tradewatch/internal/trading"
)

// setup loads configuration, applies global output flags, and loads the
// desk data. Shared by every data-reading command.
func setup() (*config.Config, *dataset.Desk, trading.Tuning, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, trading.Tuning{}, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}

	dataDir := cfg.DataDir
	if flagData != "" {
		dataDir = flagData
	}

	desk, err := dataset.Load(dataDir)
	if err != nil {
		return nil, nil, trading.Tuning{}, fmt.Errorf("loading desk data: %w", err)
	}

	return cfg, desk, buildTuning(cfg), nil
}

// buildTuning maps configuration onto the domain engine thresholds.
func buildTuning(cfg *config.Config) trading.Tuning {
	return trading.Tuning{
		TradeDeadline:      toTiers(cfg.Tiers.Trade),
		DetailDeadline:     toTiers(cfg.Tiers.Detail),
		SettlementDeadline: toTiers(cfg.Tiers.Settlement),
		LargeAmount:        cfg.Amounts.Large,
		SizableAmount:      cfg.Amounts.Sizable,
		Buckets: priority.Buckets{
			Critical: cfg.Buckets.Critical,
			High:     cfg.Buckets.High,
			Medium:   cfg.Buckets.Medium,
		},
	}
}

func toTiers(t config.DeadlineTiers) priority.DeadlineTiers {
	return priority.DeadlineTiers{
		Overdue:     t.Overdue,
		Today:       t.Today,
		Within3Days: t.Within3Days,
		Within7Days: t.Within7Days,
	}
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// topReasonLabel returns the dominant reason's label, or empty.
func topReasonLabel(r priority.Result) string {
	if len(r.Reasons) == 0 {
		return ""
	}
	return r.Reasons[0].Label
}
