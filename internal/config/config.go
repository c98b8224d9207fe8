package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level tradewatch configuration.
type Config struct {
	DataDir string  `mapstructure:"data_dir"`
	Buckets Buckets `mapstructure:"buckets"`
	Tiers   Tiers   `mapstructure:"tiers"`
	Amounts Amounts `mapstructure:"amounts"`
	Output  Output  `mapstructure:"output"`
}

// Buckets defines the score lower bound of each urgency bucket.
type Buckets struct {
	Critical float64 `mapstructure:"critical"`
	High     float64 `mapstructure:"high"`
	Medium   float64 `mapstructure:"medium"`
}

// Tiers groups the deadline proximity scores per domain.
type Tiers struct {
	Trade      DeadlineTiers `mapstructure:"trade"`
	Detail     DeadlineTiers `mapstructure:"detail"`
	Settlement DeadlineTiers `mapstructure:"settlement"`
}

// DeadlineTiers defines the score for each deadline proximity band.
type DeadlineTiers struct {
	Overdue     float64 `mapstructure:"overdue"`
	Today       float64 `mapstructure:"today"`
	Within3Days float64 `mapstructure:"within_3_days"`
	Within7Days float64 `mapstructure:"within_7_days"`
}

// Amounts defines the notional thresholds for the settlement amount factor.
type Amounts struct {
	Large   float64 `mapstructure:"large"`
	Sizable float64 `mapstructure:"sizable"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("buckets.critical", DefaultBuckets.Critical)
	v.SetDefault("buckets.high", DefaultBuckets.High)
	v.SetDefault("buckets.medium", DefaultBuckets.Medium)
	setTierDefaults(v, "tiers.trade", DefaultTradeTiers)
	setTierDefaults(v, "tiers.detail", DefaultDetailTiers)
	setTierDefaults(v, "tiers.settlement", DefaultSettlementTiers)
	v.SetDefault("amounts.large", DefaultAmounts.Large)
	v.SetDefault("amounts.sizable", DefaultAmounts.Sizable)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)

	return &cfg, nil
}

func setTierDefaults(v *viper.Viper, prefix string, tiers DeadlineTiers) {
	v.SetDefault(prefix+".overdue", tiers.Overdue)
	v.SetDefault(prefix+".today", tiers.Today)
	v.SetDefault(prefix+".within_3_days", tiers.Within3Days)
	v.SetDefault(prefix+".within_7_days", tiers.Within7Days)
}

// DBPath returns the full path to the SQLite snapshot database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
