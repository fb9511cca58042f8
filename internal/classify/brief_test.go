package classify

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBrief_EmptyFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no content", ""},
		{"whitespace only", "   \n\t\n  "},
		{"nil prefix", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Brief("file.py", []byte(tc.content), DefaultBriefLength)
			if got != "Empty file" {
				t.Errorf("Brief() = %q, want \"Empty file\"", got)
			}
		})
	}
}

func TestBrief_GenericRule(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{
			name:    "first meaningful line",
			path:    "main.go",
			content: "package main\n\nfunc main() {}",
			want:    "package main",
		},
		{
			name:    "skips line comments",
			path:    "util.go",
			content: "// Copyright notice\n// More\npackage util",
			want:    "package util",
		},
		{
			name:    "skips hash comments",
			path:    "settings.conf",
			content: "# generated file\nport = 8080",
			want:    "port = 8080",
		},
		{
			name:    "skips block comment opener",
			path:    "style.less",
			content: "/* banner */\n@base: #333;",
			want:    "@base: #333;",
		},
		{
			name:    "all comments",
			path:    "notes.cfg",
			content: "# one\n# two",
			want:    "Text file",
		},
		{
			name:    "unknown extension",
			path:    "data.xyz",
			content: "hello there",
			want:    "hello there",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Brief(tc.path, []byte(tc.content), DefaultBriefLength)
			if got != tc.want {
				t.Errorf("Brief(%q) = %q, want %q", tc.path, got, tc.want)
			}
		})
	}
}

func TestBrief_NeverExceedsMaxLen(t *testing.T) {
	long := strings.Repeat("word ", 40)
	contents := []string{
		long,
		"# " + long, // python comment rule
		"short",
	}

	for _, maxLen := range []int{10, 50, 120} {
		for _, content := range contents {
			got := Brief("file.py", []byte(content), maxLen)
			if n := utf8.RuneCountInString(got); n > maxLen {
				t.Errorf("Brief(maxLen=%d) returned %d chars: %q", maxLen, n, got)
			}
		}
	}
}

func TestBrief_DefaultLength(t *testing.T) {
	long := strings.Repeat("x", 80)
	got := Brief("file.txt", []byte(long), 0)
	if n := utf8.RuneCountInString(got); n != DefaultBriefLength {
		t.Errorf("expected default cap of %d, got %d chars", DefaultBriefLength, n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"under limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"over limit", "hello world", 8, "hello..."},
		{"multibyte runes", "héllo wörld", 8, "héllo..."},
		{"tiny limit", "hello", 2, "he"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := truncate(tc.text, tc.maxLen)
			if got != tc.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tc.text, tc.maxLen, got, tc.want)
			}
		})
	}
}

func TestBrief_InvalidUTF8(t *testing.T) {
	// Invalid bytes are dropped by the tolerant decode, not errored.
	content := append([]byte("readable text"), 0xff, 0xfe)
	got := Brief("notes.txt", content, DefaultBriefLength)
	if got != "readable text" {
		t.Errorf("Brief() = %q, want %q", got, "readable text")
	}
}
