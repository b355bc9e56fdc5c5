package lexicon

// English stopwords used by keyword extraction. Applied to every
// language as a best-effort filter; multilingual stopword lists are not
// maintained, non-English tokens simply pass through.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "he": {}, "in": {},
	"is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "that": {},
	"the": {}, "to": {}, "was": {}, "were": {}, "will": {}, "with": {},
	"this": {}, "but": {}, "they": {}, "have": {}, "had": {}, "what": {},
	"said": {}, "each": {}, "which": {}, "their": {}, "time": {},
	"about": {}, "if": {}, "up": {}, "out": {}, "many": {}, "then": {},
	"them": {}, "these": {}, "so": {}, "some": {}, "her": {}, "would": {},
	"make": {}, "like": {}, "into": {}, "him": {}, "two": {}, "more": {},
	"very": {}, "after": {}, "words": {}, "long": {}, "than": {},
	"first": {}, "been": {}, "call": {}, "who": {}, "oil": {}, "now": {},
	"find": {}, "could": {}, "made": {}, "may": {}, "part": {},
	"over": {}, "new": {}, "sound": {}, "take": {}, "only": {},
	"little": {}, "work": {}, "know": {}, "place": {}, "year": {},
	"live": {}, "me": {}, "back": {}, "give": {}, "most": {}, "good": {},
	"man": {}, "old": {}, "see": {}, "way": {}, "day": {}, "get": {},
	"use": {}, "water": {}, "farm": {}, "say": {}, "she": {},
	"there": {}, "do": {}, "how": {}, "other": {}, "write": {},
	"go": {}, "no": {}, "number": {}, "people": {}, "my": {},
	"down": {}, "did": {}, "come": {}, "look": {},
}

// IsStopword reports whether the token is filtered out of keyword
// extraction.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
