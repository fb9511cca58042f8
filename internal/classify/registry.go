package classify

import (
	"path/filepath"
	"sort"
	"strings"
)

// NormalizeExt returns the lower-cased extension of path, including the
// leading dot. Files without an extension normalize to "".
func NormalizeExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// IsTextExtension reports whether the normalized extension belongs to the
// set of analyzable text file types.
func IsTextExtension(ext string) bool {
	_, ok := rules[strings.ToLower(ext)]
	return ok
}

// Emoji returns the display emoji for a normalized extension.
func Emoji(ext string) string {
	if r, ok := rules[strings.ToLower(ext)]; ok && r.emoji != "" {
		return r.emoji
	}
	return defaultEmoji
}

// Label returns the display label for a normalized extension, e.g.
// "Python Files" for ".py". Extensions without a configured label get
// "<.EXT> Files".
func Label(ext string) string {
	ext = strings.ToLower(ext)
	if r, ok := rules[ext]; ok && r.label != "" {
		return r.label
	}
	return strings.ToUpper(ext) + " Files"
}

// Extensions returns the sorted list of known text extensions.
func Extensions() []string {
	exts := make([]string, 0, len(rules))
	for ext := range rules {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// HasBriefRule reports whether the extension has a type-specific brief rule
// (as opposed to the generic fallback).
func HasBriefRule(ext string) bool {
	r, ok := rules[strings.ToLower(ext)]
	return ok && r.brief != nil
}

// HasSummaryRule reports whether the extension has a type-specific summary rule.
func HasSummaryRule(ext string) bool {
	r, ok := rules[strings.ToLower(ext)]
	return ok && r.summary != nil
}
