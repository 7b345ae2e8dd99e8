package tracker

import (
	"strconv"
	"strings"
)

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")
var jsonPointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

func escapeToken(s string) string { return jsonPointerEscaper.Replace(s) }

func unescapeToken(s string) string { return jsonPointerUnescaper.Replace(s) }

// joinPointer appends a single escaped token to base, per RFC 6901.
func joinPointer(base, token string) string {
	if base == "" {
		return "/" + escapeToken(token)
	}
	return base + "/" + escapeToken(token)
}

// joinPointerIndex appends a decimal array index token.
func joinPointerIndex(base string, i int) string {
	return joinPointer(base, strconv.Itoa(i))
}

// splitPointer decomposes a JSON Pointer into its unescaped tokens.
// "" and "/" both decompose to an empty token list (the root).
func splitPointer(p string) []string {
	if p == "" || p == "/" {
		return nil
	}
	parts := strings.Split(p, "/")
	// p begins with "/", so parts[0] is "".
	tokens := make([]string, 0, len(parts)-1)
	for _, part := range parts[1:] {
		tokens = append(tokens, unescapeToken(part))
	}
	return tokens
}
