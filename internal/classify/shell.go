package classify

import "strings"

// shellBrief uses the first descriptive comment after a shebang line.
// Shell scripts never fall to the generic rule.
func shellBrief(_ string, content string) (string, bool) {
	if strings.HasPrefix(content, "#!") {
		lines := strings.Split(content, "\n")
		for _, line := range lines[1:] {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "#") && len(line) > 2 {
				return strings.TrimSpace(strings.Trim(line, "#")), true
			}
		}
	}
	return "Shell script", true
}

// shellSummary combines an interpreter fragment from the shebang with a
// purpose fragment from well-known command keywords (first match wins).
func shellSummary(_ string, content string, _ []string) (string, bool) {
	var parts []string

	if strings.HasPrefix(content, "#!/") {
		shebang := strings.Split(content, "\n")[0]
		if strings.Contains(shebang, "bash") {
			parts = append(parts, "Bash script")
		} else if strings.Contains(shebang, "sh") {
			parts = append(parts, "Shell script")
		}
	}

	lower := strings.ToLower(content)
	switch {
	case strings.Contains(content, "docker"):
		parts = append(parts, "Docker automation")
	case strings.Contains(content, "npm") || strings.Contains(content, "yarn"):
		parts = append(parts, "Node.js build script")
	case strings.Contains(content, "pytest") || strings.Contains(content, "unittest"):
		parts = append(parts, "Test runner script")
	case strings.Contains(lower, "deploy"):
		parts = append(parts, "Deployment script")
	}

	if len(parts) == 0 {
		return "Shell script", true
	}
	return strings.Join(parts, " "), true
}
