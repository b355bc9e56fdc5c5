package lexicon

import "social-intel/domain"

// Per-language sentiment tables for the lexicon lookup path.
// Scores follow the usual valence convention: positive words score
// above zero, negative words below, magnitude reflects intensity.

var tamilSentiment = map[string]int{
	"நல்ல":      2,
	"அருமை":     3,
	"சிறப்பு":   2,
	"மகிழ்ச்சி": 3,
	"நன்றி":     2,
	"வாழ்த்து":  2,
	"பாராட்டு":  2,
	"மோசம்":     -2,
	"கெட்ட":     -2,
	"பிரச்சனை":  -1,
	"கோபம்":     -2,
	"வருத்தம்":  -1,
	"ஆபத்து":    -3,
	"எரிச்சல்":  -1,
}

var hindiSentiment = map[string]int{
	"अच्छा":    2,
	"बेहतरीन":  3,
	"शानदार":   3,
	"खुशी":     3,
	"धन्यवाद":  2,
	"बधाई":     2,
	"तारीफ":    2,
	"बुरा":     -2,
	"गलत":      -2,
	"समस्या":   -1,
	"गुस्सा":   -2,
	"दुख":      -1,
	"खतरा":     -3,
	"परेशानी":  -1,
}

var teluguSentiment = map[string]int{
	"మంచి":          2,
	"అద్భుతం":       3,
	"చాలా బాగుంది":  3,
	"సంతోషం":        3,
	"ధన్యవాదాలు":    2,
	"అభినందనలు":     2,
	"ప్రశంసలు":      2,
	"చెడ్డది":       -2,
	"తప్పు":         -2,
	"సమస్య":         -1,
	"కోపం":          -2,
	"బాధ":           -1,
	"ప్రమాదం":       -3,
	"ఇబ్బంది":       -1,
}

var sentimentTables = map[domain.Language]map[string]int{
	domain.Tamil:  tamilSentiment,
	domain.Hindi:  hindiSentiment,
	domain.Telugu: teluguSentiment,
}

// SentimentTable returns the word table for a non-English language.
// English is scored by the valence analyzer instead, so asking for it
// returns nil.
func SentimentTable(lang domain.Language) map[string]int {
	return sentimentTables[lang]
}
