package output

import (
	"fmt"
	"strings"
)

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// Stat renders an aligned label/value pair for scan summaries.
func Stat(label, value string) string {
	return fmt.Sprintf(" %s %s", StyleLabel.Render(label), StyleValue.Render(value))
}

// ShareBar renders a proportional bar for a 0-100 percentage share.
// Example: "███░░░░░░░ 28.6%"
func ShareBar(percent float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((percent / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", StyleSuccess.Render(bar), StyleMuted.Render(fmt.Sprintf("%.1f%%", percent)))
}
