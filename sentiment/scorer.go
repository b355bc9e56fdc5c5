// Package sentiment produces polarity scores for the supported
// languages. English goes through the valence analyzer; Tamil, Hindi
// and Telugu go through fixed word tables with an explicit degradation
// chain: native lexicon, then discounted cross-language fallback.
package sentiment

import (
	"math"
	"strings"

	"social-intel/domain"
	"social-intel/lexicon"
)

const (
	// crossLanguageDiscount shrinks score and comparative when a
	// non-English text is scored through the English analyzer.
	crossLanguageDiscount = 0.7
	// crossLanguageConfidence caps the confidence of that fallback.
	crossLanguageConfidence = 0.4
)

// strategy attempts to score a text. A false return hands the text to
// the next strategy in the chain.
type strategy func(text string) (domain.SentimentResult, bool)

type Scorer struct {
	english *EnglishAnalyzer
}

func NewScorer() *Scorer {
	return &Scorer{
		english: NewEnglishAnalyzer(lexicon.EnglishValence(), lexicon.CivicOverrides()),
	}
}

// Score runs the strategy chain for the language and returns the first
// result produced. The chain always terminates: its last strategy
// cannot refuse.
func (s *Scorer) Score(text string, lang domain.Language) domain.SentimentResult {
	for _, try := range s.chain(lang) {
		if result, ok := try(text); ok {
			return result
		}
	}
	// Unreachable while chains end with an infallible strategy.
	return domain.SentimentResult{Label: domain.Neutral, Confidence: crossLanguageConfidence}
}

func (s *Scorer) chain(lang domain.Language) []strategy {
	if lang == domain.English {
		return []strategy{s.scoreEnglish}
	}
	return []strategy{s.scoreTable(lang), s.scoreCrossLanguage}
}

// scoreEnglish never refuses: a text with no lexicon hits is a valid
// neutral result at baseline confidence.
func (s *Scorer) scoreEnglish(text string) (domain.SentimentResult, bool) {
	raw, tokens := s.english.Score(text)
	comparative := 0.0
	if tokens > 0 {
		comparative = raw / float64(tokens)
	}
	return domain.SentimentResult{
		Score:       raw,
		Comparative: comparative,
		Label:       domain.LabelFor(comparative),
		Confidence:  math.Min(math.Abs(comparative)*10+0.5, 1),
	}, true
}

// scoreTable looks whitespace tokens up in the language's word table.
// It refuses when nothing matched, e.g. romanized or mixed-script text.
func (s *Scorer) scoreTable(lang domain.Language) strategy {
	table := lexicon.SentimentTable(lang)
	return func(text string) (domain.SentimentResult, bool) {
		words := strings.Fields(strings.ToLower(text))
		var sum, matched int
		for _, word := range words {
			if score, ok := table[word]; ok {
				sum += score
				matched++
			}
		}
		if matched == 0 {
			return domain.SentimentResult{}, false
		}
		comparative := float64(sum) / float64(len(words))
		return domain.SentimentResult{
			Score:       float64(sum),
			Comparative: comparative,
			Label:       domain.LabelFor(comparative),
			Confidence:  math.Min(float64(matched)/float64(len(words))+0.4, 1),
		}, true
	}
}

// scoreCrossLanguage reuses the English analyzer on the raw text with a
// fixed discount, reflecting the lower reliability of scoring a text
// outside its own lexicon.
func (s *Scorer) scoreCrossLanguage(text string) (domain.SentimentResult, bool) {
	english, _ := s.scoreEnglish(text)
	comparative := english.Comparative * crossLanguageDiscount
	return domain.SentimentResult{
		Score:       english.Score * crossLanguageDiscount,
		Comparative: comparative,
		Label:       domain.LabelFor(comparative),
		Confidence:  crossLanguageConfidence,
	}, true
}
