package classify

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Analyze performs the deep analysis of a file's full content: line counts,
// byte size, and a type-specific free-text summary. It is a pure function of
// (path, content) and never panics; internal failures degrade to an
// "Error analyzing file: ..." classification with zeroed counts.
func Analyze(path string, content []byte) (fc FileClassification) {
	defer func() {
		if r := recover(); r != nil {
			fc = AnalyzeError(path, fmt.Errorf("%v", r))
		}
	}()

	text := decodeText(content)

	// A pure split counts an empty file as one empty line. That quirk is
	// part of the report vocabulary and is preserved deliberately.
	lines := strings.Split(text, "\n")
	nonEmpty := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonEmpty++
		}
	}

	fc = FileClassification{
		Path:              path,
		Extension:         NormalizeExt(path),
		SizeBytes:         int64(len(content)),
		LineCount:         len(lines),
		NonEmptyLineCount: nonEmpty,
	}

	if r, ok := rules[fc.Extension]; ok && r.summary != nil {
		if summary, ok := r.summary(filepath.Base(path), text, lines); ok {
			fc.Summary = summary
			return fc
		}
	}
	fc.Summary = genericSummary(lines)
	return fc
}

// AnalyzeError builds the classification recorded when a file could not be
// read or analyzed: all counts zero and a fixed error summary.
func AnalyzeError(path string, cause error) FileClassification {
	return FileClassification{
		Path:      path,
		Extension: NormalizeExt(path),
		Summary:   fmt.Sprintf("Error analyzing file: %v", cause),
	}
}

// genericSummary is the absolute fallback: the first non-empty,
// non-comment line among the first five, capped at 150 characters.
func genericSummary(lines []string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		runes := []rune(line)
		if len(runes) > 150 {
			return string(runes[:150])
		}
		return line
	}
	return "Text file"
}
