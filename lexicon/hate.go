package lexicon

import "social-intel/domain"

// hateKeywords maps each hate speech keyword to its category tag.
// An empty category means the word counts as a hit but carries no tag
// (generic abusive vocabulary). The list deliberately mixes genuine
// threat language with broad profanity; every literal match forces
// detection even when diluted by a long text.
var hateKeywords = map[string]domain.HateCategory{
	"kill":   domain.Threats,
	"murder": domain.Threats,
	"die":    domain.Threats,
	"bomb":   domain.Threats,
	"attack": domain.Threats,

	"stupid":    domain.Harassment,
	"idiot":     domain.Harassment,
	"fool":      domain.Harassment,
	"worthless": domain.Harassment,

	"hate":    domain.Hostility,
	"enemy":   domain.Hostility,
	"destroy": domain.Hostility,

	"terrorist":  "",
	"violence":   "",
	"threat":     "",
	"revenge":    "",
	"war":        "",
	"useless":    "",
	"disgusting": "",
	"damn":       "",
	"hell":       "",
	"bloody":     "",
	"bastard":    "",
	"bitch":      "",
}

// aggressionPatterns are short phrase shapes that signal aggression
// directly, e.g. "kill you". Each match counts as a hit and tags the
// result as aggressive.
var aggressionPatterns = []string{
	`(?i)kill\s+you`,
	`(?i)i\s+hate`,
	`(?i)go\s+die`,
	`(?i)you\s+suck`,
	`(?i)shut\s+up`,
}

// HateKeywords returns the keyword to category mapping.
func HateKeywords() map[string]domain.HateCategory {
	return hateKeywords
}

// AggressionPatterns returns the raw regular expressions for aggressive
// phrase matching.
func AggressionPatterns() []string {
	return aggressionPatterns
}
