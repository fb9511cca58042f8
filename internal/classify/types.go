// Package classify contains the content-classification engine: per-file-type
// heuristics that inspect raw text and derive a short human-readable brief and
// a longer structured summary, without any external model or index.
package classify

// FileClassification is the result of deep-analyzing one text file. It is
// created once per file and never mutated afterwards.
type FileClassification struct {
	Path              string `json:"path"`
	Extension         string `json:"extension"`
	SizeBytes         int64  `json:"size_bytes"`
	LineCount         int    `json:"line_count"`
	NonEmptyLineCount int    `json:"non_empty_line_count"`
	Brief             string `json:"brief,omitempty"`
	Summary           string `json:"summary"`
}

// briefFunc tries a type-specific brief extraction over a content prefix.
// Returning ok=false falls through to the generic brief rule. The returned
// text is untruncated; Brief applies the length cap uniformly.
type briefFunc func(name, content string) (string, bool)

// summaryFunc tries a type-specific summary over the full content.
// Returning ok=false falls through to the generic summary rule.
type summaryFunc func(name, content string, lines []string) (string, bool)

// rule binds one normalized extension to its display metadata and its
// classification strategy. A nil brief or summary means the generic rule.
type rule struct {
	emoji   string
	label   string
	brief   briefFunc
	summary summaryFunc
}

// rules is the strategy table keyed by normalized extension. It is populated
// here once and never mutated; extensions without an entry still classify via
// the generic rules but are not considered text files by IsTextExtension.
var rules = map[string]rule{
	// Script and code types.
	".py":    {emoji: "🐍", label: "Python Files", brief: pythonBrief, summary: pythonSummary},
	".js":    {emoji: "📜", label: "JavaScript Files", summary: scriptSummary},
	".ts":    {emoji: "📘", label: "TypeScript Files", summary: scriptSummary},
	".jsx":   {emoji: "⚛️", label: "JSX Files", summary: scriptSummary},
	".tsx":   {emoji: "⚛️", label: "TSX Files", summary: scriptSummary},
	".java":  {emoji: "☕"},
	".c":     {emoji: "🔷"},
	".cpp":   {emoji: "🔷"},
	".h":     {},
	".hpp":   {},
	".cs":    {emoji: "🔷"},
	".php":   {emoji: "🐘"},
	".rb":    {emoji: "💎"},
	".go":    {emoji: "🐹"},
	".rs":    {emoji: "🦀"},
	".swift": {emoji: "🦉"},
	".kt":    {emoji: "🟣"},
	".scala": {},
	".r":     {emoji: "📊"},

	// Documents.
	".md":       {emoji: "📝", label: "Markdown Files", brief: markdownBrief, summary: markdownSummary},
	".txt":      {emoji: "📄", label: "Text Files", brief: textBrief, summary: textSummary},
	".rst":      {},
	".asciidoc": {},
	".tex":      {},
	".latex":    {},
	".bib":      {},

	// Markup and styles.
	".html": {emoji: "🌐", label: "HTML Files", brief: htmlBrief, summary: htmlSummary},
	".htm":  {emoji: "🌐", brief: htmlBrief, summary: htmlSummary},
	".css":  {emoji: "🎨", label: "CSS Files", brief: stylesheetBrief, summary: stylesheetSummary},
	// Preprocessor stylesheets share the brief rules, but their deep summary
	// intentionally falls to the generic rule.
	".scss":   {emoji: "🎨", brief: stylesheetBrief},
	".sass":   {emoji: "🎨", brief: stylesheetBrief},
	".less":   {},
	".vue":    {emoji: "💚"},
	".svelte": {emoji: "🧡"},
	".astro":  {emoji: "🚀"},

	// Structured data and config.
	".json": {emoji: "📊", label: "JSON Files", brief: jsonBrief, summary: jsonSummary},
	".xml":  {emoji: "📰"},
	".yaml": {emoji: "⚙️", label: "YAML Files"},
	".yml":  {emoji: "⚙️", label: "YAML Files"},
	".toml": {emoji: "⚙️"},
	".ini":  {emoji: "⚙️"},
	".cfg":  {emoji: "⚙️"},
	".conf": {emoji: "⚙️"},

	// Shells and automation.
	".sh":   {emoji: "🐚", label: "Shell Scripts", brief: shellBrief, summary: shellSummary},
	".bash": {emoji: "🐚", brief: shellBrief, summary: shellSummary},
	".zsh":  {},
	".fish": {},
	".ps1":  {emoji: "💠"},
	".bat":  {emoji: "🖥️", label: "Batch Files", brief: batchBrief, summary: batchSummary},
	".cmd":  {emoji: "🖥️", brief: batchBrief, summary: batchSummary},

	// Misc.
	".sql":        {emoji: "🗃️", label: "SQL Files"},
	".dockerfile": {emoji: "🐳"},
	".makefile":   {},
}

// defaultEmoji is used for text extensions without a specific emoji.
const defaultEmoji = "📄"
