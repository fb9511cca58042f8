package classify

import (
	"encoding/json"
	"fmt"
	"strings"
)

// jsonBrief shows the leading keys of an object or the length of an array.
// Malformed JSON (including a prefix cut mid-document) reads as "JSON data";
// scalar documents fall through to the generic rule.
func jsonBrief(_ string, content string) (string, bool) {
	var data any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return "JSON data", true
	}
	switch v := data.(type) {
	case map[string]any:
		keys := head(topLevelKeys(content), 3)
		return "JSON: " + strings.Join(keys, ", ") + "...", true
	case []any:
		return fmt.Sprintf("JSON array [%d items]", len(v)), true
	}
	return "", false
}

// jsonSummary recognizes package manifests and compiler configuration, and
// otherwise describes the document by its leading keys or array length.
func jsonSummary(_ string, content string, _ []string) (string, bool) {
	var data any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return "JSON data file", true
	}

	switch v := data.(type) {
	case map[string]any:
		_, hasName := v["name"]
		_, hasVersion := v["version"]
		_, hasDeps := v["dependencies"]
		if hasName && hasVersion && hasDeps {
			return fmt.Sprintf("Package manifest: %v v%v", v["name"], v["version"]), true
		}
		if _, ok := v["compilerOptions"]; ok {
			return "TypeScript configuration", true
		}
		keys := head(topLevelKeys(content), 5)
		return "Configuration with keys: " + strings.Join(keys, ", "), true
	case []any:
		return fmt.Sprintf("Data array with %d items", len(v)), true
	}
	return "", false
}

// topLevelKeys extracts the keys of a top-level JSON object in document
// order. A Go map would lose the order the author wrote the keys in, so the
// token stream is walked instead. Returns nil for non-object documents.
func topLevelKeys(content string) []string {
	dec := json.NewDecoder(strings.NewReader(content))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := keyTok.(string)
		if !ok {
			return keys
		}
		keys = append(keys, key)

		// Consume the value belonging to this key.
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return keys
		}
	}
	return keys
}
