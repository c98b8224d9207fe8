// Package app contains the Cobra command tree for tradewatch.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
	flagData    string
)

var rootCmd = &cobra.Command{
	Use:   "tradewatch",
	Short: "Priority dashboard for loan-trading operations",
	Long: `tradewatch ranks a loan-trading desk's working items by urgency. It reads
the desk's trades, trade details, and settlements from local data files,
scores each item through a multi-factor priority engine, and renders ranked
inboxes, urgency distributions, and snapshot-over-time trends.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("tradewatch", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  inbox        Ranked trade inbox")
		fmt.Println("  settlements  Ranked settlement inbox")
		fmt.Println("  details      Ranked document reviews")
		fmt.Println("  stats        Urgency distribution across the desk")
		fmt.Println("  track        Snapshot stats and compare over time")
		fmt.Println("  seed         Generate a sample desk dataset")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/tradewatch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "Data directory (default: from config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
