package classify

import (
	"path/filepath"
	"strings"
)

// DefaultBriefLength is the default maximum length of a brief, in characters.
const DefaultBriefLength = 50

// BriefPrefixChars is how much of a file's head the brief rules consider.
const BriefPrefixChars = 1000

// BriefReadError is the fixed brief used when a file could not be read.
const BriefReadError = "Error reading"

// Brief returns a single short descriptive line for a file, derived from its
// path and the first portion of its content (up to ~1000 characters, already
// read by the caller). The result never exceeds maxLen characters; maxLen
// values below 1 select DefaultBriefLength. Brief never panics: any internal
// failure degrades to the fixed "Error reading" string.
func Brief(path string, prefix []byte, maxLen int) (brief string) {
	if maxLen < 1 {
		maxLen = DefaultBriefLength
	}
	defer func() {
		if recover() != nil {
			brief = BriefReadError
		}
	}()

	content := strings.TrimSpace(decodeText(prefix))
	if content == "" {
		return "Empty file"
	}

	if r, ok := rules[NormalizeExt(path)]; ok && r.brief != nil {
		if text, ok := r.brief(filepath.Base(path), content); ok {
			return truncate(text, maxLen)
		}
	}
	return truncate(genericBrief(content), maxLen)
}

// genericBrief is the fallback brief rule: the first non-empty line that does
// not look like a comment, or "Text file" when there is none.
func genericBrief(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") {
			continue
		}
		return line
	}
	return "Text file"
}

// truncate caps text at maxLen characters, replacing the tail with an
// ellipsis of exactly three dots when the text is longer.
func truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
