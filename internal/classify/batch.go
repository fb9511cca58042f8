package classify

import "strings"

// batchBrief uses the first REM/:: comment, then the first ECHO message.
// Batch files never fall to the generic rule.
func batchBrief(_ string, content string) (string, bool) {
	if m := batchCommentPattern.FindStringSubmatch(content); m != nil {
		return m[1], true
	}
	if m := batchEchoPattern.FindStringSubmatch(content); m != nil {
		message := strings.TrimSpace(m[1])
		if message != "" && !strings.HasPrefix(message, "@") {
			return message, true
		}
	}
	return "Batch script", true
}

// batchSummary combines the first comment with a purpose fragment derived
// from well-known command keywords (first match wins).
func batchSummary(_ string, content string, _ []string) (string, bool) {
	var parts []string

	if m := batchCommentPattern.FindStringSubmatch(content); m != nil {
		parts = append(parts, m[1])
	}

	switch {
	case strings.Contains(content, "npm"):
		parts = append(parts, "Node.js build/run script")
	case strings.Contains(content, "python") || strings.Contains(content, "py"):
		parts = append(parts, "Python execution script")
	case strings.Contains(content, "git"):
		parts = append(parts, "Git automation script")
	case strings.Contains(content, "copy") || strings.Contains(content, "xcopy"):
		parts = append(parts, "File management script")
	}

	if len(parts) == 0 {
		return "Windows batch script", true
	}
	return strings.Join(parts, " "), true
}
