package store

import (
	"database/sql"
	"time"
)

// CreateSnapshot inserts a new snapshot and returns its ID.
func (db *DB) CreateSnapshot(command, version string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO snapshots (taken_at, command, version) VALUES (?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339), command, version,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetLatestSnapshot returns the most recent snapshot, or nil if none exist.
func (db *DB) GetLatestSnapshot() (*Snapshot, error) {
	row := db.conn.QueryRow("SELECT id, taken_at, command, version FROM snapshots ORDER BY id DESC LIMIT 1")
	return scanSnapshot(row)
}

// GetSnapshotN returns the Nth most recent snapshot (1 = latest, 2 = previous, etc.).
func (db *DB) GetSnapshotN(n int) (*Snapshot, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, command, version FROM snapshots ORDER BY id DESC LIMIT 1 OFFSET ?",
		n-1,
	)
	return scanSnapshot(row)
}

func scanSnapshot(row *sql.Row) (*Snapshot, error) {
	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &takenAt, &s.Command, &s.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}

// InsertInboxStats inserts one domain's bucket counts for a snapshot.
func (db *DB) InsertInboxStats(row *InboxStatsRow) error {
	_, err := db.conn.Exec(
		`INSERT INTO inbox_stats
		(snapshot_id, domain, critical, high, medium, low, total)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row.SnapshotID, row.Domain, row.Critical, row.High, row.Medium, row.Low, row.Total,
	)
	return err
}

// GetInboxStats returns all per-domain bucket counts for a snapshot.
func (db *DB) GetInboxStats(snapshotID int64) ([]InboxStatsRow, error) {
	rows, err := db.conn.Query(
		`SELECT id, snapshot_id, domain, critical, high, medium, low, total
		 FROM inbox_stats WHERE snapshot_id = ? ORDER BY domain`,
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var stats []InboxStatsRow
	for rows.Next() {
		var r InboxStatsRow
		if err := rows.Scan(&r.ID, &r.SnapshotID, &r.Domain, &r.Critical, &r.High, &r.Medium, &r.Low, &r.Total); err != nil {
			return nil, err
		}
		stats = append(stats, r)
	}
	return stats, rows.Err()
}

// InsertItemScore inserts a top-ranked item for a snapshot.
func (db *DB) InsertItemScore(row *ItemScoreRow) error {
	_, err := db.conn.Exec(
		`INSERT INTO item_scores
		(snapshot_id, domain, item_id, score, band, top_reason, suggested_action)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row.SnapshotID, row.Domain, row.ItemID, row.Score, row.Band,
		row.TopReason, row.SuggestedAction,
	)
	return err
}

// GetTopItemScores returns the highest-scored items for one domain within a
// snapshot.
func (db *DB) GetTopItemScores(snapshotID int64, domain string, limit int) ([]ItemScoreRow, error) {
	rows, err := db.conn.Query(
		`SELECT id, snapshot_id, domain, item_id, score, band, top_reason, suggested_action
		 FROM item_scores WHERE snapshot_id = ? AND domain = ?
		 ORDER BY score DESC, id ASC LIMIT ?`,
		snapshotID, domain, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []ItemScoreRow
	for rows.Next() {
		var r ItemScoreRow
		var reason, action sql.NullString
		if err := rows.Scan(&r.ID, &r.SnapshotID, &r.Domain, &r.ItemID, &r.Score, &r.Band, &reason, &action); err != nil {
			return nil, err
		}
		r.TopReason = reason.String
		r.SuggestedAction = action.String
		items = append(items, r)
	}
	return items, rows.Err()
}

// DiffStats computes per-bucket deltas between two snapshots' stats rows.
// Domains present in only one snapshot are diffed against zero counts.
func DiffStats(previous, current []InboxStatsRow) []StatsDelta {
	prevByDomain := make(map[string]InboxStatsRow)
	for _, r := range previous {
		prevByDomain[r.Domain] = r
	}

	var deltas []StatsDelta
	for _, curr := range current {
		prev := prevByDomain[curr.Domain]
		buckets := []struct {
			name      string
			prevCount int
			currCount int
		}{
			{"critical", prev.Critical, curr.Critical},
			{"high", prev.High, curr.High},
			{"medium", prev.Medium, curr.Medium},
			{"low", prev.Low, curr.Low},
			{"total", prev.Total, curr.Total},
		}
		for _, b := range buckets {
			deltas = append(deltas, StatsDelta{
				Domain:   curr.Domain,
				Bucket:   b.name,
				Previous: b.prevCount,
				Current:  b.currCount,
				Delta:    b.currCount - b.prevCount,
			})
		}
	}
	return deltas
}
