// Package report assembles the scan results into the final Markdown
// document, plus the optional PDF rendering of it.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blackwell-systems/treedoc/internal/classify"
	"github.com/blackwell-systems/treedoc/internal/walker"
)

// Params carries everything the Markdown renderer needs for one report.
type Params struct {
	Root            string
	GeneratedAt     time.Time
	Result          *walker.Result
	Classifications []classify.FileClassification
	IgnoreDirs      []string
	WithContent     bool
}

// Markdown renders the complete architecture report.
func Markdown(p Params) string {
	var lines []string

	lines = append(lines,
		"# Project Architecture",
		"",
		fmt.Sprintf("**Generated on:** %s  ", p.GeneratedAt.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("**Root Directory:** `%s`  ", p.Root),
		fmt.Sprintf("**Total Files:** %d  ", p.Result.FileCount),
		fmt.Sprintf("**Total Directories:** %d  ", p.Result.DirCount),
		fmt.Sprintf("**Text Files Analyzed:** %d  ", p.Result.TextFileCount),
		"",
	)

	if chart := Chart(p.Result.Distribution, 40); chart != nil {
		lines = append(lines, "## File Type Distribution", "", "```")
		lines = append(lines, chart...)
		lines = append(lines, "```", "")
	}

	lines = append(lines, "## Directory Structure", "", "```")
	lines = append(lines, Tree(p.Result.Root)...)
	lines = append(lines, "```")

	if p.WithContent && len(p.Classifications) > 0 {
		lines = append(lines, contentAnalysis(p.Classifications)...)
	}

	lines = append(lines, summarySection(p)...)

	return strings.Join(lines, "\n")
}

// contentAnalysis renders the per-file deep analyses grouped by extension.
func contentAnalysis(classifications []classify.FileClassification) []string {
	lines := []string{
		"",
		"## File Content Analysis",
		"",
		"Detailed analysis of text files found in the project:",
		"",
	}

	grouped := make(map[string][]classify.FileClassification)
	for _, fc := range classifications {
		grouped[fc.Extension] = append(grouped[fc.Extension], fc)
	}

	exts := make([]string, 0, len(grouped))
	for ext := range grouped {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	for _, ext := range exts {
		lines = append(lines,
			fmt.Sprintf("### %s %s", classify.Emoji(ext), classify.Label(ext)),
			"",
		)

		group := grouped[ext]
		sort.Slice(group, func(i, j int) bool { return group[i].Path < group[j].Path })

		for _, fc := range group {
			lines = append(lines,
				fmt.Sprintf("#### `%s`", fc.Path),
				"",
				"| Lines | Non-Empty | Size |",
				"|-------|-----------|------|",
				fmt.Sprintf("| %d | %d | %s |", fc.LineCount, fc.NonEmptyLineCount, FormatSize(fc.SizeBytes)),
				"",
				"**Summary:** "+fc.Summary,
				"",
			)
		}
	}
	return lines
}

func summarySection(p Params) []string {
	ignored := "None"
	if len(p.IgnoreDirs) > 0 {
		dirs := append([]string(nil), p.IgnoreDirs...)
		sort.Strings(dirs)
		ignored = strings.Join(dirs, ", ")
	}

	return []string{
		"",
		"## Summary",
		"",
		fmt.Sprintf("- **Files scanned:** %d", p.Result.FileCount),
		fmt.Sprintf("- **Directories scanned:** %d", p.Result.DirCount),
		fmt.Sprintf("- **Text files analyzed:** %d", p.Result.TextFileCount),
		"- **Ignored dot directories:** All directories starting with '.'",
		"- **Ignored exclamation directories:** All directories starting with '!'",
		"- **Ignored other directories:** " + ignored,
		"- **Excluded files:** desktop.ini, thumbs.db, *.lnk",
	}
}
