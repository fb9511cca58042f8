package classify

import "regexp"

// Named extraction patterns, one per extracted concept. Each is documented
// with its capture contract; submatch 1 is always the extracted text unless
// noted otherwise. All are compiled once at startup and never mutated.
var (
	// Python docstrings: group 1 is the body of the first triple-quoted
	// string, newlines included.
	doubleDocstringPattern = regexp.MustCompile(`(?s)"""(.*?)"""`)
	singleDocstringPattern = regexp.MustCompile(`(?s)'''(.*?)'''`)

	// inlineCommentPattern captures the text of the first "#" comment.
	inlineCommentPattern = regexp.MustCompile(`#\s*(.+)`)

	// classNamePattern and defNamePattern capture the first class or function
	// name anywhere in the content (brief extraction).
	classNamePattern = regexp.MustCompile(`class\s+(\w+)`)
	defNamePattern   = regexp.MustCompile(`def\s+(\w+)`)

	// topClassPattern and topDefPattern capture names of column-zero
	// definitions only (deep analysis ignores nested definitions).
	topClassPattern = regexp.MustCompile(`(?m)^class\s+(\w+)`)
	topDefPattern   = regexp.MustCompile(`(?m)^def\s+(\w+)`)

	// importTargetPattern captures the target of each column-zero
	// "import x" or "from x import ..." statement.
	importTargetPattern = regexp.MustCompile(`(?m)^(?:from|import)\s+(\S+)`)

	// entryBlockPattern captures the body of the `if __name__ ...:` block,
	// up to the next column-zero statement or end of content.
	entryBlockPattern = regexp.MustCompile(`(?s)if __name__.*?:\s*\n(.*?)(?:\n\S|\z)`)

	// headingTitlePattern captures the text of a level-one markdown heading;
	// headingPattern captures the text of a heading at any level.
	headingTitlePattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	headingPattern      = regexp.MustCompile(`(?m)^#+\s+(.+)$`)

	// linkPattern matches markdown links (which includes the link part of an
	// image); imagePattern matches images only. Group 1 is the bracket text.
	linkPattern  = regexp.MustCompile(`\[([^\]]+)\]\([^\)]+\)`)
	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\([^\)]+\)`)

	// htmlTitlePattern captures the single-line content of <title>;
	// h1Pattern captures the single-line content of the first <h1>, inner
	// tags included (strip with innerTagPattern).
	htmlTitlePattern = regexp.MustCompile(`(?i)<title>(.*?)</title>`)
	h1Pattern        = regexp.MustCompile(`(?i)<h1[^>]*>(.*?)</h1>`)
	innerTagPattern  = regexp.MustCompile(`<[^>]+>`)

	// Occurrence counters for HTML structure.
	formTagPattern   = regexp.MustCompile(`(?i)<form`)
	scriptTagPattern = regexp.MustCompile(`(?i)<script`)
	styleTagPattern  = regexp.MustCompile(`(?i)<style`)

	// blockCommentPattern captures the text of a single-line /* ... */
	// comment; multi-line comments intentionally do not match.
	blockCommentPattern = regexp.MustCompile(`/\*\s*(.+?)\s*\*/`)

	// selectorPattern captures a top-level selector-like token: an optional
	// "." or "#" prefix plus word characters, immediately opening a block.
	selectorPattern = regexp.MustCompile(`(?m)^([.#]?\w+)\s*\{`)

	// keyframesPattern captures the name of each @keyframes animation.
	keyframesPattern = regexp.MustCompile(`@keyframes\s+(\w+)`)

	// batchCommentPattern captures the text of the first REM or :: comment;
	// batchEchoPattern the argument of the first ECHO command.
	batchCommentPattern = regexp.MustCompile(`(?:REM|rem|::)\s+(.+)`)
	batchEchoPattern    = regexp.MustCompile(`(?:ECHO|echo)\s+(.+)`)

	// exportNamePattern captures the identifier of a named JS/TS export.
	exportNamePattern = regexp.MustCompile(`export\s+(?:default\s+)?(?:class|function|const|let|var)\s+(\w+)`)

	// Date stamps in plain-text files: anywhere in a line, and anchored at
	// the start of a line (log detection).
	datePattern        = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	leadingDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

	// numberedItemPattern matches a "1." style list item prefix.
	numberedItemPattern = regexp.MustCompile(`^\d+\.`)
)
