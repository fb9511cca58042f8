// Package store provides SQLite database access for treedoc scan history.
package store

import "time"

// Snapshot represents a point-in-time record of a completed scan.
type Snapshot struct {
	ID            int64     `json:"id"`
	TakenAt       time.Time `json:"taken_at"`
	Root          string    `json:"root"`
	ReportPath    string    `json:"report_path"`
	Version       string    `json:"version"`
	FileCount     int       `json:"file_count"`
	DirCount      int       `json:"dir_count"`
	TextFileCount int       `json:"text_file_count"`
	TotalSize     int64     `json:"total_size"`
}

// TypeCount records how many files of one text extension a snapshot saw.
type TypeCount struct {
	ID         int64  `json:"id"`
	SnapshotID int64  `json:"snapshot_id"`
	Ext        string `json:"ext"`
	Count      int    `json:"count"`
}
