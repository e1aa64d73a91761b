package devicemap

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxInputLength caps the accepted input size in runes. Fuzzy matching is
// O(input × dictionary), so the cap bounds per-call cost against hostile
// oversized queries.
const MaxInputLength = 1000

// Signature patterns for input that is never a device mention: script tags,
// javascript: URIs, template injection, path traversal, and shell
// metacharacters followed by a word.
var maliciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`<script`),
	regexp.MustCompile(`javascript:`),
	regexp.MustCompile(`\$\{.*\}`),
	regexp.MustCompile(`\.\.[\\/]`),
	regexp.MustCompile(`\|\s*[\p{L}\p{N}_]`),
	regexp.MustCompile(`;\s*[\p{L}\p{N}_]`),
}

// Validate reports whether input is safe to process. Rejection is a normal
// outcome, not an error: every public lookup short-circuits to "no match"
// when Validate fails.
func Validate(input string) bool {
	if utf8.RuneCountInString(input) > MaxInputLength {
		return false
	}
	lower := strings.ToLower(input)
	for _, p := range maliciousPatterns {
		if p.MatchString(lower) {
			return false
		}
	}
	return true
}

// Sanitize strips C0 and C1 control characters (U+0000..U+001F, U+007F..U+009F).
func Sanitize(input string) string {
	return strings.Map(func(r rune) rune {
		if r <= 0x1F || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, input)
}
