package sentiment

import "social-intel/lexicon"

// EnglishAnalyzer scores text word by word against a merged valence
// table, flipping on negators and doubling on boosters. The table is
// frozen at construction time, so the analyzer is safe for concurrent
// use.
type EnglishAnalyzer struct {
	valence map[string]float64
}

// NewEnglishAnalyzer merges the base valence table with the civic
// overrides into a private copy.
func NewEnglishAnalyzer(base, overrides map[string]float64) *EnglishAnalyzer {
	merged := make(map[string]float64, len(base)+len(overrides))
	for word, score := range base {
		merged[word] = score
	}
	for word, score := range overrides {
		merged[word] = score
	}
	return &EnglishAnalyzer{valence: merged}
}

// Score returns the raw valence sum and the token count of the text.
// Only the token immediately before a scored word is inspected for
// negation or boosting.
func (a *EnglishAnalyzer) Score(text string) (raw float64, tokens int) {
	words := lexicon.Words(text)
	for i, word := range words {
		score, ok := a.valence[word]
		if !ok {
			continue
		}
		if i > 0 {
			switch prev := words[i-1]; {
			case lexicon.IsNegator(prev):
				score = -score
			case lexicon.IsBooster(prev):
				score *= 2
			}
		}
		raw += score
	}
	return raw, len(words)
}
