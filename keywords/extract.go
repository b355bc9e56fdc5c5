// Package keywords extracts a small ranked keyword set for downstream
// display: frequency is positional (first occurrence wins), not scored.
package keywords

import (
	"social-intel/lexicon"

	"github.com/samber/lo"
)

// Limit caps the number of extracted keywords.
const Limit = 10

// Extract lowercases the text, drops short tokens and stopwords,
// deduplicates preserving first occurrence order and caps the result.
func Extract(text string) []string {
	words := lo.Filter(lexicon.Words(text), func(word string, _ int) bool {
		return len([]rune(word)) > 2 && !lexicon.IsStopword(word)
	})
	unique := lo.Uniq(words)
	if len(unique) > Limit {
		unique = unique[:Limit]
	}
	return unique
}
