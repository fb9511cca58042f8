// Package config provides configuration loading and defaults for treedoc.
package config

// DefaultIgnoreDirs are directory names skipped during a scan.
var DefaultIgnoreDirs = []string{"__pycache__", "node_modules", "venv"}

// DefaultConfigDir is the default location for treedoc configuration.
const DefaultConfigDir = "~/.config/treedoc"

// DefaultDBName is the filename for the SQLite history database.
const DefaultDBName = "treedoc.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultBriefLength is the maximum length of a one-line file brief.
const DefaultBriefLength = 50

// DefaultHistoryLimit is how many snapshots the history command shows.
const DefaultHistoryLimit = 10

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
