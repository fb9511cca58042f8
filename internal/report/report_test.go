package report

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/treedoc/internal/classify"
	"github.com/blackwell-systems/treedoc/internal/walker"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0.0B"},
		{512, "512.0B"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{1024 * 1024, "1.0MB"},
		{5 * 1024 * 1024 * 1024, "5.0GB"},
		{2 * 1024 * 1024 * 1024 * 1024, "2.0TB"},
	}

	for _, tc := range tests {
		if got := FormatSize(tc.size); got != tc.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tc.size, got, tc.want)
		}
	}
}

func TestChart(t *testing.T) {
	lines := Chart(map[string]int{".py": 3, ".md": 1}, 40)
	if lines == nil {
		t.Fatal("expected chart lines")
	}
	if lines[0] != "File Type Distribution:" {
		t.Errorf("header = %q", lines[0])
	}

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, ".py") || !strings.Contains(joined, ".md") {
		t.Error("expected both extensions in chart")
	}
	if !strings.Contains(joined, "(75.0%)") {
		t.Errorf("expected 75.0%% row, got:\n%s", joined)
	}
	if !strings.Contains(joined, "Total files analyzed: 4") {
		t.Error("expected total row")
	}

	// Most frequent type renders first.
	var first string
	for _, line := range lines[2:] {
		if line != "" {
			first = line
			break
		}
	}
	if !strings.Contains(first, ".py") {
		t.Errorf("expected .py first, got %q", first)
	}
}

func TestChart_Empty(t *testing.T) {
	if lines := Chart(map[string]int{}, 40); lines != nil {
		t.Errorf("expected nil for empty distribution, got %v", lines)
	}
}

func TestChart_OthersRow(t *testing.T) {
	distribution := map[string]int{}
	for _, ext := range []string{".py", ".md", ".js", ".ts", ".css", ".sh", ".bat", ".txt", ".json", ".html", ".xml", ".yaml"} {
		distribution[ext] = 1
	}
	lines := Chart(distribution, 40)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "📦 others") {
		t.Errorf("expected an others row for >10 types:\n%s", joined)
	}
}

func buildTree() *walker.Node {
	return &walker.Node{
		Name:  "project",
		IsDir: true,
		Children: []*walker.Node{
			{
				Name:  "docs",
				IsDir: true,
				Children: []*walker.Node{
					{Name: "guide.md", IsText: true, Size: 100, Brief: "User guide"},
				},
			},
			{Name: "logo.png", Size: 2048},
			{Name: "main.py", IsText: true, Size: 300, Brief: "Main script"},
		},
	}
}

func TestTree(t *testing.T) {
	lines := Tree(buildTree())
	want := []string{
		"project/",
		"├── 📁 docs/",
		"│   └── 📝 guide.md (100.0B) - User guide",
		"├── logo.png (2.0KB)",
		"└── 🐍 main.py (300.0B) - Main script",
	}

	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestTree_PermissionDenied(t *testing.T) {
	root := &walker.Node{
		Name:  "project",
		IsDir: true,
		Children: []*walker.Node{
			{Name: "locked", IsDir: true, Denied: true},
		},
	}
	lines := Tree(root)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "[Permission Denied]") {
		t.Errorf("expected permission marker:\n%s", joined)
	}
}

func TestMarkdown(t *testing.T) {
	result := &walker.Result{
		Root:          buildTree(),
		FileCount:     3,
		DirCount:      1,
		TextFileCount: 2,
		Distribution:  map[string]int{".py": 1, ".md": 1},
	}
	classifications := []classify.FileClassification{
		{Path: "main.py", Extension: ".py", SizeBytes: 300, LineCount: 12, NonEmptyLineCount: 10, Summary: "Python module"},
		{Path: "docs/guide.md", Extension: ".md", SizeBytes: 100, LineCount: 5, NonEmptyLineCount: 4, Summary: "Markdown document"},
	}

	text := Markdown(Params{
		Root:            "/tmp/project",
		GeneratedAt:     time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
		Result:          result,
		Classifications: classifications,
		IgnoreDirs:      []string{"node_modules", "venv"},
		WithContent:     true,
	})

	for _, want := range []string{
		"# Project Architecture",
		"**Generated on:** 2026-03-01 10:30:00",
		"**Root Directory:** `/tmp/project`",
		"**Total Files:** 3",
		"## File Type Distribution",
		"## Directory Structure",
		"└── 🐍 main.py (300.0B) - Main script",
		"## File Content Analysis",
		"### 📝 Markdown Files",
		"#### `docs/guide.md`",
		"| 12 | 10 | 300.0B |",
		"**Summary:** Python module",
		"## Summary",
		"- **Files scanned:** 3",
		"- **Ignored other directories:** node_modules, venv",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestMarkdown_NoContent(t *testing.T) {
	result := &walker.Result{
		Root:          buildTree(),
		FileCount:     3,
		DirCount:      1,
		TextFileCount: 2,
		Distribution:  map[string]int{".py": 1},
	}

	text := Markdown(Params{
		Root:        "/tmp/project",
		GeneratedAt: time.Now(),
		Result:      result,
		WithContent: false,
	})

	if strings.Contains(text, "## File Content Analysis") {
		t.Error("content analysis must be omitted without content")
	}
	if !strings.Contains(text, "## Directory Structure") {
		t.Error("tree section always renders")
	}
}

func TestContentAnalysis_GroupsSortedByExtension(t *testing.T) {
	classifications := []classify.FileClassification{
		{Path: "b.py", Extension: ".py", Summary: "x"},
		{Path: "a.md", Extension: ".md", Summary: "y"},
	}
	lines := contentAnalysis(classifications)
	joined := strings.Join(lines, "\n")

	md := strings.Index(joined, "### 📝 Markdown Files")
	py := strings.Index(joined, "### 🐍 Python Files")
	if md < 0 || py < 0 || md > py {
		t.Errorf("groups out of order:\n%s", joined)
	}
}
