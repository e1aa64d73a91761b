package devicemap

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/rangetable"
	"golang.org/x/text/width"
)

// stripSet covers everything the comparison key must not contain: whitespace,
// ASCII and Japanese punctuation (brackets, 句読点), and symbol characters.
// The katakana prolonged sound mark (ー) is a letter modifier, not punctuation,
// so it survives.
var stripSet = rangetable.Merge(unicode.Z, unicode.P, unicode.S)

// Transform chains keep internal buffer state, so each concurrent caller
// takes a fresh one from the pool.
// Width folding runs first: some halfwidth forms fold into punctuation or
// symbol characters (e.g. U+FF9E -> U+309B), and those must still be caught
// by the removal pass or a second Normalize would produce a different key.
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			width.Fold, // fullwidth Latin and digits -> ASCII, halfwidth kana -> kana
			runes.Remove(runes.In(stripSet)),
		)
	},
}

// articles are tried in this order against the front of the key.
var articles = []string{"the", "a", "an"}

// Normalize converts arbitrary text into the canonical comparison key used
// for all dictionary lookups: width-folded, stripped of whitespace,
// punctuation and symbols, lowercased, with any leading English article
// removed.
//
// Width folding runs before article stripping so that a fullwidth article
// prefix is caught on the first pass; together with stripping articles to a
// fixpoint this makes Normalize idempotent for every input.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	tr := chainPool.Get().(transform.Transformer)
	folded, _, err := transform.String(tr, text)
	tr.Reset()
	chainPool.Put(tr)

	s := text
	if err == nil {
		s = folded
	}
	s = strings.ToLower(s)

	return stripLeadingArticle(s)
}

func stripLeadingArticle(s string) string {
	for {
		stripped := s
		for _, a := range articles {
			if strings.HasPrefix(s, a) {
				stripped = s[len(a):]
				break
			}
		}
		if stripped == s {
			return s
		}
		s = stripped
	}
}
