package report

import "fmt"

// FormatSize converts a byte count to the report's fixed human-readable
// form ("1.5KB", "2.0MB"). The report wording is part of the output
// contract, so this does not go through a humanization library.
func FormatSize(size int64) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if value < 1024.0 {
			return fmt.Sprintf("%.1f%s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.1fTB", value)
}
