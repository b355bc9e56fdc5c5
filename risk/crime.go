package risk

import (
	"strings"

	"social-intel/lexicon"

	goahocorasick "github.com/anknown/ahocorasick"
)

// CrimeDetector is a binary membership gate over the combined
// cross-language crime keyword set. It carries no confidence score;
// the aggregator only needs the boolean.
type CrimeDetector struct {
	matcher *goahocorasick.Machine
}

func NewCrimeDetector() (*CrimeDetector, error) {
	keywords := lexicon.CrimeKeywords()
	patterns := make([][]rune, len(keywords))
	for i, word := range keywords {
		patterns[i] = []rune(strings.ToLower(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &CrimeDetector{matcher: m}, nil
}

// Related reports whether the text contains any crime keyword,
// case-insensitively, in any of the supported languages.
func (d *CrimeDetector) Related(text string) bool {
	lower := []rune(strings.ToLower(text))
	return len(d.matcher.MultiPatternSearch(lower, true)) > 0
}
