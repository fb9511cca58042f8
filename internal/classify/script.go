package classify

import "strings"

// scriptSummary analyzes JavaScript and TypeScript family files: framework
// detection, exported names, and one usage fragment (first match wins
// among DOM events, HTTP clients, and test calls). Briefs for these
// extensions use the generic rule.
func scriptSummary(_ string, content string, _ []string) (string, bool) {
	var parts []string
	lower := strings.ToLower(content)

	switch {
	case strings.Contains(lower, "react"):
		if strings.Contains(lower, "component") {
			parts = append(parts, "React component")
		} else {
			parts = append(parts, "React application code")
		}
	case strings.Contains(lower, "angular"):
		parts = append(parts, "Angular module")
	case strings.Contains(lower, "vue"):
		parts = append(parts, "Vue.js component")
	case strings.Contains(lower, "express"):
		parts = append(parts, "Express.js server code")
	case strings.Contains(lower, "jquery"):
		parts = append(parts, "jQuery-based scripts")
	}

	if exports := captureAll(exportNamePattern, content); len(exports) > 0 {
		if strings.Contains(content, "default") {
			parts = append(parts, "Exports: "+exports[0]+" (default)")
		} else {
			parts = append(parts, "Exports: "+strings.Join(head(exports, 3), ", "))
		}
	}

	switch {
	case strings.Contains(content, "addEventListener") || strings.Contains(content, "onclick"):
		parts = append(parts, "Event handling and DOM manipulation")
	case strings.Contains(content, "fetch(") || strings.Contains(content, "axios"):
		parts = append(parts, "API integration code")
	case strings.Contains(content, "test(") || strings.Contains(content, "describe("):
		parts = append(parts, "Test suite")
	}

	if len(parts) == 0 {
		return "JavaScript code", true
	}
	return strings.Join(parts, " "), true
}
