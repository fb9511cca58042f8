package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blackwell-systems/treedoc/internal/classify"
)

// chartTopTypes is how many file types get their own chart row; the rest
// are folded into an "others" row.
const chartTopTypes = 10

// Chart renders the file-type distribution as text bar rows, most frequent
// first. Returns nil when the distribution is empty.
func Chart(distribution map[string]int, width int) []string {
	if width <= 0 {
		width = 40
	}
	total := 0
	for _, count := range distribution {
		total += count
	}
	if total == 0 {
		return nil
	}

	type typeCount struct {
		ext   string
		count int
	}
	sorted := make([]typeCount, 0, len(distribution))
	for ext, count := range distribution {
		sorted = append(sorted, typeCount{ext, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count == sorted[j].count {
			return sorted[i].ext < sorted[j].ext
		}
		return sorted[i].count > sorted[j].count
	})

	lines := []string{"File Type Distribution:", ""}

	row := func(label string, count int) {
		percentage := float64(count) / float64(total) * 100
		bar := strings.Repeat("█", count*width/total)
		lines = append(lines, fmt.Sprintf("%-12s %s %3d (%4.1f%%)", label, bar, count, percentage))
	}

	top := sorted
	if len(top) > chartTopTypes {
		top = top[:chartTopTypes]
	}
	for _, tc := range top {
		row(classify.Emoji(tc.ext)+" "+tc.ext, tc.count)
	}

	if len(sorted) > chartTopTypes {
		others := 0
		for _, tc := range sorted[chartTopTypes:] {
			others += tc.count
		}
		row("📦 others", others)
	}

	lines = append(lines, "", fmt.Sprintf("Total files analyzed: %d", total))
	return lines
}
