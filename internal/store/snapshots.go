package store

import (
	"database/sql"
	"sort"
	"time"
)

// CreateSnapshot inserts a new scan snapshot and returns its ID.
// The TakenAt field is ignored; the insert time is recorded.
func (db *DB) CreateSnapshot(s *Snapshot) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO snapshots
		(taken_at, root, report_path, version, file_count, dir_count, text_file_count, total_size)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), s.Root, s.ReportPath, s.Version,
		s.FileCount, s.DirCount, s.TextFileCount, s.TotalSize,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// InsertTypeCounts records the extension distribution for a snapshot.
// Extensions are inserted in sorted order so row order is deterministic.
func (db *DB) InsertTypeCounts(snapshotID int64, distribution map[string]int) error {
	exts := make([]string, 0, len(distribution))
	for ext := range distribution {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, ext := range exts {
		if _, err := tx.Exec(
			"INSERT INTO type_counts (snapshot_id, ext, count) VALUES (?, ?, ?)",
			snapshotID, ext, distribution[ext],
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListSnapshots returns the most recent snapshots, newest first.
func (db *DB) ListSnapshots(limit int) ([]Snapshot, error) {
	rows, err := db.conn.Query(
		`SELECT id, taken_at, root, report_path, version,
		 file_count, dir_count, text_file_count, total_size
		 FROM snapshots ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snaps []Snapshot
	for rows.Next() {
		var s Snapshot
		var takenAt string
		if err := rows.Scan(
			&s.ID, &takenAt, &s.Root, &s.ReportPath, &s.Version,
			&s.FileCount, &s.DirCount, &s.TextFileCount, &s.TotalSize,
		); err != nil {
			return nil, err
		}
		s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

// GetLatestSnapshot returns the most recent snapshot, or nil if none exist.
func (db *DB) GetLatestSnapshot() (*Snapshot, error) {
	row := db.conn.QueryRow(
		`SELECT id, taken_at, root, report_path, version,
		 file_count, dir_count, text_file_count, total_size
		 FROM snapshots ORDER BY id DESC LIMIT 1`,
	)
	return scanSnapshot(row)
}

// GetPreviousForRoot returns the newest snapshot of the same root taken
// before the given snapshot, or nil if this root has no earlier scans.
func (db *DB) GetPreviousForRoot(root string, beforeID int64) (*Snapshot, error) {
	row := db.conn.QueryRow(
		`SELECT id, taken_at, root, report_path, version,
		 file_count, dir_count, text_file_count, total_size
		 FROM snapshots WHERE root = ? AND id < ? ORDER BY id DESC LIMIT 1`,
		root, beforeID,
	)
	return scanSnapshot(row)
}

func scanSnapshot(row *sql.Row) (*Snapshot, error) {
	var s Snapshot
	var takenAt string
	err := row.Scan(
		&s.ID, &takenAt, &s.Root, &s.ReportPath, &s.Version,
		&s.FileCount, &s.DirCount, &s.TextFileCount, &s.TotalSize,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}

// GetTypeCounts returns the extension distribution for a snapshot, in
// the stored (sorted) order.
func (db *DB) GetTypeCounts(snapshotID int64) ([]TypeCount, error) {
	rows, err := db.conn.Query(
		"SELECT id, snapshot_id, ext, count FROM type_counts WHERE snapshot_id = ? ORDER BY id",
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var counts []TypeCount
	for rows.Next() {
		var tc TypeCount
		if err := rows.Scan(&tc.ID, &tc.SnapshotID, &tc.Ext, &tc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}
