package classify

import "strings"

// decodeText converts raw file bytes to a string under the tolerant decoding
// policy: invalid UTF-8 sequences are dropped rather than failing, so a binary
// file with a text-like extension still yields a best-effort result.
func decodeText(b []byte) string {
	return strings.ToValidUTF8(string(b), "")
}
