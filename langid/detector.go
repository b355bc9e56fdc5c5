// Package langid guesses the dominant language of a text within the
// engine's supported set. It never fails: absence of signal resolves to
// English, which downstream stages treat as the statistical default.
package langid

import (
	"social-intel/domain"

	"github.com/abadojack/whatlanggo"
)

var detectOptions = whatlanggo.Options{
	Whitelist: map[whatlanggo.Lang]bool{
		whatlanggo.Eng: true,
		whatlanggo.Tam: true,
		whatlanggo.Hin: true,
		whatlanggo.Tel: true,
	},
}

// Identify returns exactly one supported language code for the text.
// Any detection outcome outside the supported set, including an
// undetermined result on short or mixed-script input, maps to English.
func Identify(text string) domain.Language {
	info := whatlanggo.DetectWithOptions(text, detectOptions)
	switch info.Lang {
	case whatlanggo.Tam:
		return domain.Tamil
	case whatlanggo.Hin:
		return domain.Hindi
	case whatlanggo.Tel:
		return domain.Telugu
	default:
		return domain.English
	}
}
