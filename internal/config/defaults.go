// Package config provides configuration loading and defaults for tradewatch.
package config

// DefaultDataDir is the default location of the desk's data files
// (trades.json, trade_details.json, settlements.json).
const DefaultDataDir = "~/.local/share/tradewatch"

// DefaultConfigDir is the default location for tradewatch configuration.
const DefaultConfigDir = "~/.config/tradewatch"

// DefaultDBName is the filename for the SQLite snapshot database.
const DefaultDBName = "tradewatch.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultBuckets holds the score lower bounds for the urgency buckets
// shared by all domain engines.
var DefaultBuckets = Buckets{
	Critical: 70,
	High:     40,
	Medium:   20,
}

// DefaultTradeTiers holds the deadline proximity scores for trades.
var DefaultTradeTiers = DeadlineTiers{
	Overdue:     40,
	Today:       30,
	Within3Days: 20,
	Within7Days: 10,
}

// DefaultDetailTiers holds the deadline proximity scores for trade details.
var DefaultDetailTiers = DeadlineTiers{
	Overdue:     45,
	Today:       35,
	Within3Days: 20,
	Within7Days: 8,
}

// DefaultSettlementTiers holds the deadline proximity scores for settlements.
var DefaultSettlementTiers = DeadlineTiers{
	Overdue:     50,
	Today:       40,
	Within3Days: 25,
	Within7Days: 10,
}

// DefaultAmounts holds the notional thresholds for the settlement amount factor.
var DefaultAmounts = Amounts{
	Large:   50_000_000,
	Sizable: 10_000_000,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
