package domain

// Language is the fixed set of languages the engine understands.
// Every analyzed text is assigned exactly one of these codes; anything
// the detector cannot place lands on English by design.
type Language string

const (
	English Language = "en"
	Tamil   Language = "ta"
	Hindi   Language = "hi"
	Telugu  Language = "te"
)

var languageNames = map[Language]string{
	English: "English",
	Tamil:   "Tamil",
	Hindi:   "Hindi",
	Telugu:  "Telugu",
}

// ParseLanguage maps a raw code to a supported Language.
// The boolean reports whether the code belongs to the supported set.
func ParseLanguage(code string) (Language, bool) {
	l := Language(code)
	_, ok := languageNames[l]
	return l, ok
}

// DisplayName returns the human readable name of the language,
// or "Unknown" for codes outside the supported set.
func (l Language) DisplayName() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return "Unknown"
}

// SupportedLanguages lists every supported code with its display name.
func SupportedLanguages() map[string]string {
	out := make(map[string]string, len(languageNames))
	for code, name := range languageNames {
		out[string(code)] = name
	}
	return out
}
