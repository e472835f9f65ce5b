package numerics

import (
	"strings"
	"unicode"
)

// SplitWords lowercases text and splits on any whitespace run, dropping
// empty tokens. Used only for comparison metrics (word-change ratio,
// validator inputs) — never for timing-bearing token streams.
func SplitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), unicode.IsSpace)
}

// TextToWords splits text on whitespace runs while preserving case and
// attached punctuation. Used for reconciliation, where the resulting
// tokens become the new word stream applied over a segment's timing.
func TextToWords(text string) []string {
	return strings.FieldsFunc(text, unicode.IsSpace)
}

// ReconstructText joins words with single spaces and trims the result.
func ReconstructText(words []string) string {
	return strings.TrimSpace(strings.Join(words, " "))
}
