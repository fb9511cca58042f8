package classify

import (
	"fmt"
	"strings"
)

// stylesheetBrief uses the first single-line block comment, then the leading
// top-level selectors.
func stylesheetBrief(_ string, content string) (string, bool) {
	if strings.Contains(content, "/*") {
		if m := blockCommentPattern.FindStringSubmatch(content); m != nil {
			return m[1], true
		}
	}
	if selectors := captureAll(selectorPattern, content); len(selectors) > 0 {
		return "Styles: " + strings.Join(head(selectors, 3), ", "), true
	}
	return "", false
}

// stylesheetSummary assembles fragments for framework detection, distinct
// selector count, media queries, and keyframe animations.
func stylesheetSummary(_ string, content string, _ []string) (string, bool) {
	var parts []string
	lower := strings.ToLower(content)

	if strings.Contains(lower, "bootstrap") {
		parts = append(parts, "Bootstrap-based styles")
	} else if strings.Contains(lower, "tailwind") {
		parts = append(parts, "Tailwind CSS utilities")
	}

	if selectors := captureAll(selectorPattern, content); len(selectors) > 0 {
		distinct := make(map[string]bool, len(selectors))
		for _, s := range selectors {
			distinct[s] = true
		}
		parts = append(parts, fmt.Sprintf("Defines %d unique selectors", len(distinct)))
	}

	if media := strings.Count(content, "@media"); media > 0 {
		parts = append(parts, fmt.Sprintf("Responsive design with %d media queries", media))
	}

	if animations := captureAll(keyframesPattern, content); len(animations) > 0 {
		parts = append(parts, "Animations: "+strings.Join(animations, ", "))
	}

	if len(parts) == 0 {
		return "Stylesheet", true
	}
	return strings.Join(parts, " "), true
}
