// Package store provides SQLite persistence for tradewatch inbox snapshots.
package store

import "time"

// Snapshot represents a point-in-time capture of the desk's inbox stats.
type Snapshot struct {
	ID      int64     `json:"id"`
	TakenAt time.Time `json:"taken_at"`
	Command string    `json:"command"`
	Version string    `json:"version"`
}

// InboxStatsRow is the persisted urgency distribution for one domain
// (trades, details, settlements) within a snapshot.
type InboxStatsRow struct {
	ID         int64  `json:"id"`
	SnapshotID int64  `json:"snapshot_id"`
	Domain     string `json:"domain"`
	Critical   int    `json:"critical"`
	High       int    `json:"high"`
	Medium     int    `json:"medium"`
	Low        int    `json:"low"`
	Total      int    `json:"total"`
}

// ItemScoreRow is a top-ranked item persisted with a snapshot so the track
// command can show what was driving urgency at the time.
type ItemScoreRow struct {
	ID              int64   `json:"id"`
	SnapshotID      int64   `json:"snapshot_id"`
	Domain          string  `json:"domain"`
	ItemID          string  `json:"item_id"`
	Score           float64 `json:"score"`
	Band            string  `json:"band"`
	TopReason       string  `json:"top_reason,omitempty"`
	SuggestedAction string  `json:"suggested_action,omitempty"`
}

// StatsDelta is the change in one domain's bucket counts between snapshots.
type StatsDelta struct {
	Domain   string `json:"domain"`
	Bucket   string `json:"bucket"`
	Previous int    `json:"previous"`
	Current  int    `json:"current"`
	Delta    int    `json:"delta"`
}
