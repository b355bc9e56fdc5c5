package lexicon

// englishValence is a compact general-purpose valence table in the
// AFINN tradition: integer-ish scores in [-5, +5] keyed by lowercase
// word. It is intentionally small; CivicOverrides patches the terms
// where a general lexicon misjudges civic safety discourse.
var englishValence = map[string]float64{
	// positive
	"good": 3, "great": 3, "excellent": 3, "amazing": 4, "awesome": 4,
	"fantastic": 4, "wonderful": 4, "superb": 5, "perfect": 5, "best": 3,
	"better": 2, "nice": 3, "love": 3, "loved": 3, "like": 2, "liked": 2,
	"happy": 3, "glad": 3, "thank": 2, "thanks": 2, "grateful": 3,
	"appreciate": 2, "appreciated": 2, "impressed": 3, "impressive": 3,
	"praise": 3, "praised": 3, "commendable": 3, "salute": 2,
	"quick": 1, "fast": 1, "prompt": 2, "timely": 2, "swift": 2,
	"efficient": 2, "effective": 2, "responsive": 2, "professional": 2,
	"friendly": 2, "helpful": 2, "kind": 2, "caring": 2, "polite": 2,
	"brave": 2, "courageous": 2, "dedicated": 2, "vigilant": 2, "alert": 1,
	"calm": 2, "peaceful": 2, "clean": 2, "safe": 1, "secure": 1,
	"proud": 2, "respect": 2, "trust": 1, "honest": 2, "hope": 2,
	"hopeful": 2, "relief": 2, "relieved": 2, "improved": 2,
	"improvement": 2, "support": 2, "supported": 2, "success": 2,
	"successful": 3, "win": 4, "won": 3, "welcome": 2, "congratulations": 2,

	// negative
	"bad": -3, "worst": -3, "worse": -3, "terrible": -3, "horrible": -3,
	"awful": -3, "poor": -2, "sad": -2, "angry": -3, "anger": -3,
	"afraid": -2, "fear": -2, "feared": -2, "scary": -2, "scared": -2,
	"frightened": -2, "panic": -3, "worried": -3, "worry": -3,
	"problem": -2, "problems": -2, "trouble": -2, "broken": -1,
	"corrupt": -3, "corruption": -3, "dirty": -2, "unsafe": -2,
	"risky": -2, "dangerous": -2, "dead": -3, "death": -2, "died": -3,
	"die": -3, "dying": -3, "kill": -3, "killed": -3, "killing": -3,
	"attack": -2, "attacked": -2, "hate": -3, "hated": -3, "hurt": -2,
	"injured": -2, "injury": -2, "victim": -1, "slow": -2, "late": -1,
	"useless": -2, "worthless": -2, "stupid": -2, "idiot": -3,
	"fool": -2, "disgusting": -3, "shame": -2, "shameful": -2,
	"disappointed": -2, "disappointing": -2, "fail": -2, "failed": -2,
	"failure": -2, "riot": -2, "chaos": -2, "terror": -3, "cruel": -3,
	"abuse": -3, "abused": -3, "ignored": -2, "neglect": -2, "lost": -2,
	"missing": -1, "accident": -2, "wrong": -2,
}

// civicOverrides patches the valence table for police analytics:
// civic safety terms read positive, crime vocabulary reads negative.
// A bare general-purpose lexicon gets both wrong.
var civicOverrides = map[string]float64{
	"police":     1,
	"officer":    1,
	"safety":     2,
	"security":   2,
	"protection": 2,
	"help":       2,
	"rescue":     3,
	"justice":    2,

	"crime":    -2,
	"criminal": -2,
	"theft":    -3,
	"robbery":  -3,
	"murder":   -4,
	"assault":  -3,
	"violence": -3,
	"danger":   -2,
	"threat":   -3,
}

// negators flip the sign of the word that follows them.
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "neither": {}, "nor": {},
	"cannot": {}, "can't": {}, "cant": {}, "don't": {}, "dont": {},
	"doesn't": {}, "doesnt": {}, "isn't": {}, "isnt": {},
	"wasn't": {}, "wasnt": {}, "won't": {}, "wont": {},
	"wouldn't": {}, "wouldnt": {}, "shouldn't": {}, "shouldnt": {},
	"couldn't": {}, "couldnt": {}, "didn't": {}, "didnt": {},
	"ain't": {}, "aint": {}, "hardly": {}, "barely": {}, "rarely": {},
}

// boosters double the weight of the word that follows them.
var boosters = map[string]struct{}{
	"very": {}, "really": {}, "extremely": {}, "absolutely": {},
	"completely": {}, "totally": {}, "highly": {}, "incredibly": {},
	"so": {}, "too": {}, "utterly": {}, "deeply": {},
}

// EnglishValence returns the base English valence table.
func EnglishValence() map[string]float64 {
	return englishValence
}

// CivicOverrides returns the domain-specific valence patches.
func CivicOverrides() map[string]float64 {
	return civicOverrides
}

// IsNegator reports whether the token flips the sign of the next word.
func IsNegator(token string) bool {
	_, ok := negators[token]
	return ok
}

// IsBooster reports whether the token intensifies the next word.
func IsBooster(token string) bool {
	_, ok := boosters[token]
	return ok
}
