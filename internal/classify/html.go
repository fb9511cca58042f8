package classify

import (
	"fmt"
	"strings"
)

// htmlBrief prefers the document title, then the first top-level heading
// with inner tags stripped. HTML files never fall to the generic rule.
func htmlBrief(_ string, content string) (string, bool) {
	if m := htmlTitlePattern.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := h1Pattern.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(innerTagPattern.ReplaceAllString(m[1], "")), true
	}
	return "HTML document", true
}

// htmlSummary assembles fragments for the page title, form count, detected
// front-end libraries, and script/style tag counts.
func htmlSummary(_ string, content string, _ []string) (string, bool) {
	var parts []string
	lower := strings.ToLower(content)

	if m := htmlTitlePattern.FindStringSubmatch(content); m != nil {
		parts = append(parts, "Webpage: "+strings.TrimSpace(m[1]))
	}

	if strings.Contains(lower, "<form") {
		forms := len(formTagPattern.FindAllString(content, -1))
		parts = append(parts, fmt.Sprintf("Interactive page with %d form(s)", forms))
	}

	var libs []string
	if strings.Contains(lower, "jquery") {
		libs = append(libs, "jQuery")
	}
	if strings.Contains(lower, "react") {
		libs = append(libs, "React")
	}
	if strings.Contains(lower, "vue") {
		libs = append(libs, "Vue")
	}
	if len(libs) > 0 {
		parts = append(parts, "Uses: "+strings.Join(libs, ", "))
	}

	scripts := len(scriptTagPattern.FindAllString(content, -1))
	styles := len(styleTagPattern.FindAllString(content, -1))
	if scripts > 0 || styles > 0 {
		parts = append(parts, fmt.Sprintf("Contains %d scripts and %d inline styles", scripts, styles))
	}

	if len(parts) == 0 {
		return "HTML document", true
	}
	return strings.Join(parts, " "), true
}
