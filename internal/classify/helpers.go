package classify

import "regexp"

// captureAll returns the first capture group of every match of re in content.
func captureAll(re *regexp.Regexp, content string) []string {
	matches := re.FindAllStringSubmatch(content, -1)
	if matches == nil {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// head returns at most the first n elements of xs.
func head(xs []string, n int) []string {
	if len(xs) <= n {
		return xs
	}
	return xs[:n]
}
