package classify

import "testing"

func TestHTMLBrief(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "title tag wins",
			content: "<html><head><title>Dashboard</title></head><h1>Other</h1></html>",
			want:    "Dashboard",
		},
		{
			name:    "h1 with inner tags stripped",
			content: "<body><h1 class=\"big\">Welcome <em>home</em></h1></body>",
			want:    "Welcome home",
		},
		{
			name:    "neither present",
			content: "<div>content</div>",
			want:    "HTML document",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Brief("index.html", []byte(tc.content), DefaultBriefLength)
			if got != tc.want {
				t.Errorf("Brief() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHTMLSummary(t *testing.T) {
	content := `<html><head><title>Signup</title><script src="app.js"></script></head>
<body><form action="/join"></form><script>init()</script></body></html>`
	fc := Analyze("signup.html", []byte(content))
	want := "Webpage: Signup Interactive page with 1 form(s) Contains 2 scripts and 0 inline styles"
	if fc.Summary != want {
		t.Errorf("Summary = %q, want %q", fc.Summary, want)
	}
}

func TestStylesheetBrief(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{
			name:    "leading block comment",
			path:    "main.css",
			content: "/* Site-wide layout */\nbody { margin: 0; }",
			want:    "Site-wide layout",
		},
		{
			name:    "leading selectors",
			path:    "main.css",
			content: "body {\n margin: 0;\n}\n.nav {\n}\n#app {\n}\n.footer {\n}",
			want:    "Styles: body, .nav, #app",
		},
		{
			name:    "scss shares brief rules",
			path:    "theme.scss",
			content: "/* Theme variables */\n$base: #333;",
			want:    "Theme variables",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Brief(tc.path, []byte(tc.content), DefaultBriefLength)
			if got != tc.want {
				t.Errorf("Brief() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStylesheetSummary(t *testing.T) {
	content := `body { margin: 0; }
body { padding: 0; }
.nav { color: blue; }
@media (max-width: 600px) { body { margin: 4px; } }
@keyframes fadein { from { opacity: 0; } }`
	fc := Analyze("site.css", []byte(content))
	want := "Defines 2 unique selectors Responsive design with 1 media queries Animations: fadein"
	if fc.Summary != want {
		t.Errorf("Summary = %q, want %q", fc.Summary, want)
	}
}

func TestStylesheetSummary_PreprocessorFallsToGeneric(t *testing.T) {
	// .scss deep summaries use the generic rule, unlike .css.
	fc := Analyze("theme.scss", []byte("$base: #333;\n"))
	if fc.Summary != "$base: #333;" {
		t.Errorf("Summary = %q, want generic first line", fc.Summary)
	}
}

func TestScriptSummary(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{
			name:    "plain code",
			path:    "util.js",
			content: "const x = 1;\n",
			want:    "JavaScript code",
		},
		{
			name:    "react component with default export",
			path:    "App.jsx",
			content: "import React from 'react';\nexport default function AppComponent() {}\n",
			want:    "React component Exports: AppComponent (default)",
		},
		{
			name:    "named exports and api calls",
			path:    "client.ts",
			content: "export const get = () => fetch('/api');\nexport const put = () => fetch('/api');\n",
			want:    "Exports: get, put API integration code",
		},
		{
			name:    "test suite",
			path:    "util.test.js",
			content: "describe('util', () => {\n  test('works', () => {});\n});\n",
			want:    "Test suite",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fc := Analyze(tc.path, []byte(tc.content))
			if fc.Summary != tc.want {
				t.Errorf("Summary = %q, want %q", fc.Summary, tc.want)
			}
		})
	}
}
