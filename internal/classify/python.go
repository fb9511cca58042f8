package classify

import (
	"fmt"
	"strings"
)

// pythonBrief extracts a brief from a Python file prefix: the first line of a
// leading docstring, a descriptive comment, or a synthesized line for the
// first definition.
func pythonBrief(_ string, content string) (string, bool) {
	if strings.HasPrefix(content, `"""`) || strings.HasPrefix(content, "'''") {
		if doc, ok := leadingDocstring(content); ok {
			return strings.Split(doc, "\n")[0], true
		}
	}

	if m := inlineCommentPattern.FindStringSubmatch(content); m != nil && len(m[1]) > 10 {
		return m[1], true
	}

	if strings.Contains(content, "__main__") {
		return "Main script", true
	}
	if strings.Contains(content, "class ") {
		if m := classNamePattern.FindStringSubmatch(content); m != nil {
			return "Defines " + m[1] + " class", true
		}
	} else if strings.Contains(content, "def ") {
		if m := defNamePattern.FindStringSubmatch(content); m != nil {
			return "Defines " + m[1] + "()", true
		}
	}
	return "", false
}

// pythonSummary assembles independently-triggered fragments: docstring lead
// paragraph, import-derived domain guess, structure counts, notable function
// names, and entry-block behavior.
func pythonSummary(_ string, content string, _ []string) (string, bool) {
	var parts []string

	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, "'''") {
		if doc, ok := leadingDocstring(content); ok && doc != "" {
			parts = append(parts, strings.Split(doc, "\n\n")[0])
		}
	}

	if imports := captureAll(importTargetPattern, content); len(imports) > 0 {
		if domain := importDomain(imports); domain != "" {
			parts = append(parts, domain)
		}
	}

	classes := captureAll(topClassPattern, content)
	functions := captureAll(topDefPattern, content)

	if strings.Contains(content, "__main__") {
		parts = append(parts, "Executable script with main entry point")
	}

	if len(classes) > 0 {
		parts = append(parts, fmt.Sprintf("Defines %d class(es): %s",
			len(classes), strings.Join(head(classes, 5), ", ")))
	}

	if len(functions) > 0 {
		if key := keyFunctions(functions); len(key) > 0 {
			parts = append(parts, "Key functions: "+strings.Join(key, ", "))
		}
	}

	if strings.Contains(content, "if __name__") {
		if m := entryBlockPattern.FindStringSubmatch(content); m != nil {
			body := m[1]
			if strings.Contains(body, "argparse") || strings.Contains(body, "ArgumentParser") {
				parts = append(parts, "Command-line interface with argument parsing")
			} else if strings.Contains(body, "app.run") {
				parts = append(parts, "Web server startup")
			}
		}
	}

	if len(parts) == 0 {
		return "Python module", true
	}
	return strings.Join(parts, " "), true
}

// leadingDocstring returns the trimmed body of the first triple-quoted
// string, trying double quotes before single quotes.
func leadingDocstring(content string) (string, bool) {
	m := doubleDocstringPattern.FindStringSubmatch(content)
	if m == nil {
		m = singleDocstringPattern.FindStringSubmatch(content)
	}
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// importDomain guesses the module's domain from known library names among
// the import targets. First matching domain wins.
func importDomain(imports []string) string {
	joined := strings.ToLower(strings.Join(imports, " "))
	switch {
	case strings.Contains(joined, "flask") || strings.Contains(joined, "django"):
		return "Web application module"
	case strings.Contains(joined, "numpy") || strings.Contains(joined, "pandas"):
		return "Data analysis module"
	case strings.Contains(joined, "tensorflow") || strings.Contains(joined, "torch"):
		return "Machine learning module"
	case strings.Contains(joined, "pytest") || strings.Contains(joined, "unittest"):
		return "Test module"
	}
	return ""
}

// entryPointNames are function names always worth surfacing.
var entryPointNames = map[string]bool{
	"main":    true,
	"run":     true,
	"execute": true,
	"process": true,
}

// keyFunctions selects notable function names: constructor-likes are
// skipped, test_ functions collapse into a single "test functions" marker,
// well-known entry points always make the list, and at most five others
// are kept.
func keyFunctions(functions []string) []string {
	var key []string
	haveTests := false
	for _, fn := range functions {
		switch {
		case strings.HasPrefix(fn, "__init__"):
			// skip
		case strings.HasPrefix(fn, "test_"):
			if !haveTests {
				key = append(key, "test functions")
				haveTests = true
			}
		case entryPointNames[fn]:
			key = append(key, fn)
		case len(key) < 5:
			key = append(key, fn)
		}
	}
	return key
}
