package classify

import "strings"

// textBrief classifies a plain-text file from its first non-empty line and
// filename: readme, todo list, log, list/notes, or the line itself.
func textBrief(name, content string) (string, bool) {
	var first string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			first = line
			break
		}
	}
	if first == "" {
		return "", false
	}

	lowerFirst := strings.ToLower(first)
	switch {
	case strings.Contains(lowerFirst, "readme") || strings.Contains(strings.ToLower(name), "readme"):
		return "Readme file", true
	case strings.Contains(lowerFirst, "todo") || strings.Contains(content, "- [ ]"):
		return "TODO list", true
	case strings.Contains(lowerFirst, "log") || datePattern.MatchString(first):
		return "Log file", true
	case numberedItemPattern.MatchString(first) || strings.HasPrefix(first, "-"):
		return "List or notes", true
	}
	return first, true
}

// textSummary classifies a plain-text file as README, license, todo list,
// timestamped log, or a generic document with a first-line preview. The
// checks are mutually exclusive and tried in that order.
func textSummary(name, content string, lines []string) (string, bool) {
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	var sample []string
	for _, line := range lines[:limit] {
		if line = strings.TrimSpace(line); line != "" {
			sample = append(sample, line)
		}
	}

	lowerName := strings.ToLower(name)
	leading := strings.ToLower(content)
	if len(leading) > 100 {
		leading = leading[:100]
	}

	switch {
	case strings.Contains(lowerName, "readme"):
		return "README text file with project information", true
	case strings.Contains(lowerName, "license"):
		return "License information", true
	case strings.Contains(leading, "todo"):
		return "TODO list or task tracking", true
	case len(sample) > 0 && allTimestamped(head(sample, 3)):
		return "Log file with timestamped entries", true
	case len(sample) > 0:
		preview := []rune(sample[0])
		if len(preview) > 100 {
			preview = preview[:100]
		}
		return "Text document: " + string(preview), true
	}
	return "Text file", true
}

// allTimestamped reports whether every line starts with a YYYY-MM-DD stamp.
func allTimestamped(lines []string) bool {
	for _, line := range lines {
		if !leadingDatePattern.MatchString(line) {
			return false
		}
	}
	return true
}
