// Package risk holds the two independent risk detectors. Both run on
// every text regardless of its detected language: short social posts
// mix scripts, and the vocabularies recur verbatim across languages.
package risk

import (
	"math"
	"regexp"
	"strings"

	"social-intel/domain"
	"social-intel/lexicon"

	goahocorasick "github.com/anknown/ahocorasick"
)

// detectionFloor is the confidence above which hate speech is flagged.
// Any literal hit also forces detection, even when diluted by a long
// text.
const detectionFloor = 0.3

// HateSpeechDetector matches the hate keyword set with an Aho-Corasick
// automaton and a fixed list of aggression phrase patterns. Immutable
// after construction, safe for concurrent use.
type HateSpeechDetector struct {
	matcher    *goahocorasick.Machine
	categories map[string]domain.HateCategory
	patterns   []*regexp.Regexp
}

func NewHateSpeechDetector() (*HateSpeechDetector, error) {
	categories := lexicon.HateKeywords()

	patterns := make([][]rune, 0, len(categories))
	for word := range categories {
		patterns = append(patterns, []rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}

	compiled := make([]*regexp.Regexp, 0, len(lexicon.AggressionPatterns()))
	for _, expr := range lexicon.AggressionPatterns() {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}

	return &HateSpeechDetector{
		matcher:    m,
		categories: categories,
		patterns:   compiled,
	}, nil
}

// Detect counts keyword and pattern hits over the text. Each distinct
// keyword counts once however often it occurs; each matching pattern
// counts once and tags the result as aggressive.
func (d *HateSpeechDetector) Detect(text string) domain.HateSpeechResult {
	lower := strings.ToLower(text)

	// Walk matches in positional order so category order is stable
	// between runs on the same text.
	matched := make(map[string]struct{})
	seen := make(map[domain.HateCategory]struct{})
	categories := make([]domain.HateCategory, 0, 4)
	for _, span := range d.matcher.MultiPatternSearch([]rune(lower), false) {
		word := string(span.Word)
		if _, dup := matched[word]; dup {
			continue
		}
		matched[word] = struct{}{}

		category := d.categories[word]
		if category == "" {
			continue
		}
		if _, dup := seen[category]; dup {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}

	hits := len(matched)

	for _, re := range d.patterns {
		if re.MatchString(text) {
			hits++
			if _, dup := seen[domain.Aggressive]; !dup {
				seen[domain.Aggressive] = struct{}{}
				categories = append(categories, domain.Aggressive)
			}
		}
	}

	totalWords := len(strings.Fields(text))
	confidence := 0.0
	if totalWords > 0 {
		confidence = math.Min(float64(hits)/float64(totalWords)*3, 1)
	}

	return domain.HateSpeechResult{
		Detected:   confidence > detectionFloor || hits > 0,
		Confidence: confidence,
		Categories: categories,
	}
}
