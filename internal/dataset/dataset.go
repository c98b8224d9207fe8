// Package dataset loads and writes the desk's working data files.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/harborline/tradewatch/internal/trading"
)

// File names within the data directory.
const (
	TradesFile      = "trades.json"
	DetailsFile     = "trade_details.json"
	SettlementsFile = "settlements.json"
)

// Desk is the full working set the dashboard operates on.
type Desk struct {
	Trades      []trading.Trade       `json:"trades"`
	Details     []trading.TradeDetail `json:"trade_details"`
	Settlements []trading.Settlement  `json:"settlements"`
}

// Load reads the three desk data files from dir. The files load
// concurrently; a missing file yields an empty collection so a partial desk
// still renders.
func Load(dir string) (*Desk, error) {
	var desk Desk

	var g errgroup.Group
	g.Go(func() error {
		var err error
		desk.Trades, err = readCollection[trading.Trade](filepath.Join(dir, TradesFile))
		return err
	})
	g.Go(func() error {
		var err error
		desk.Details, err = readCollection[trading.TradeDetail](filepath.Join(dir, DetailsFile))
		return err
	})
	g.Go(func() error {
		var err error
		desk.Settlements, err = readCollection[trading.Settlement](filepath.Join(dir, SettlementsFile))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &desk, nil
}

// Write writes the desk's collections into dir, creating it if needed.
func Write(desk *Desk, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := writeCollection(filepath.Join(dir, TradesFile), desk.Trades); err != nil {
		return err
	}
	if err := writeCollection(filepath.Join(dir, DetailsFile), desk.Details); err != nil {
		return err
	}
	return writeCollection(filepath.Join(dir, SettlementsFile), desk.Settlements)
}

func readCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return items, nil
}

func writeCollection[T any](path string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
