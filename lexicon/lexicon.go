// Package lexicon holds every fixed table the engine scores against:
// crime and hate speech vocabularies, per-language sentiment tables,
// the English valence table with its civic safety overrides, stopwords
// and the intent training corpus.
//
// All tables are read-only after package initialization. Callers must
// never mutate the returned maps and slices.
package lexicon

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}']+`)

// Words lowercases the text and splits it into word tokens, dropping
// punctuation. Works across Latin, Tamil, Devanagari and Telugu scripts.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}
