package classify

import (
	"fmt"
	"strings"
)

// markdownBrief uses the first meaningful line: a heading with its markers
// stripped, or any line long enough to carry content on its own.
func markdownBrief(_ string, content string) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "<!--") {
			continue
		}
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.Trim(line, "#")), true
		}
		if len(line) > 20 {
			return line, true
		}
	}
	return "", false
}

// markdownSummary classifies the document (project docs, task list,
// changelog, or plain sections) and appends element counts.
func markdownSummary(_ string, content string, _ []string) (string, bool) {
	var parts []string
	lower := strings.ToLower(content)

	if m := headingTitlePattern.FindStringSubmatch(content); m != nil {
		parts = append(parts, "Documentation: "+m[1])
	}

	headings := captureAll(headingPattern, content)

	switch {
	case strings.Contains(lower, "installation") && strings.Contains(lower, "usage"):
		parts = append(parts, "Project documentation with setup instructions")
	case strings.Contains(lower, "todo") || strings.Contains(content, "- [ ]"):
		open := strings.Count(content, "- [ ]")
		done := strings.Count(content, "- [x]")
		parts = append(parts, fmt.Sprintf("Task list (%d/%d completed)", done, open+done))
	case strings.Contains(lower, "changelog") || strings.Contains(lower, "release"):
		parts = append(parts, "Version history/changelog")
	case len(headings) > 0:
		parts = append(parts, fmt.Sprintf("Contains %d sections", len(headings)))
	}

	var elements []string
	if n := len(linkPattern.FindAllString(content, -1)); n > 0 {
		elements = append(elements, fmt.Sprintf("%d links", n))
	}
	if n := len(imagePattern.FindAllString(content, -1)); n > 0 {
		elements = append(elements, fmt.Sprintf("%d images", n))
	}
	if fences := strings.Count(content, "```"); fences > 0 {
		elements = append(elements, fmt.Sprintf("%d code blocks", fences/2))
	}
	if len(elements) > 0 {
		parts = append(parts, "Includes: "+strings.Join(elements, ", "))
	}

	if len(parts) == 0 {
		return "Markdown document", true
	}
	return strings.Join(parts, " "), true
}
