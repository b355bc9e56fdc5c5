package domain

type SentimentLabel string

const (
	Positive SentimentLabel = "positive"
	Neutral  SentimentLabel = "neutral"
	Negative SentimentLabel = "negative"
)

// Polarity thresholds on the comparative score.
// They are identical for every language so downstream behavior stays consistent.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// LabelFor derives the polarity label from a comparative score.
func LabelFor(comparative float64) SentimentLabel {
	switch {
	case comparative > positiveThreshold:
		return Positive
	case comparative < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

type SentimentResult struct {
	Score       float64        `json:"score"`
	Comparative float64        `json:"comparative"`
	Label       SentimentLabel `json:"label"`
	Confidence  float64        `json:"confidence"`
}

type HateCategory string

const (
	Threats    HateCategory = "threats"
	Harassment HateCategory = "harassment"
	Hostility  HateCategory = "hostility"
	Aggressive HateCategory = "aggressive"
)

type HateSpeechResult struct {
	Detected   bool           `json:"detected"`
	Confidence float64        `json:"confidence"`
	Categories []HateCategory `json:"categories"`
}

type ThreatLevel string

const (
	Low      ThreatLevel = "low"
	Medium   ThreatLevel = "medium"
	High     ThreatLevel = "high"
	Critical ThreatLevel = "critical"
)

// ThreatLevelFor combines sentiment, hate speech and crime relatedness
// into one ordinal severity. Evaluated top-down, first match wins.
func ThreatLevelFor(sentiment SentimentResult, hate HateSpeechResult, crimeRelated bool) ThreatLevel {
	if hate.Detected && hate.Confidence > 0.7 {
		return Critical
	}
	if hate.Detected || (crimeRelated && sentiment.Label == Negative && sentiment.Confidence > 0.7) {
		return High
	}
	if crimeRelated && sentiment.Label == Negative {
		return Medium
	}
	return Low
}

// Analysis is the single result contract surfaced to callers.
type Analysis struct {
	Text         string           `json:"text"`
	Language     Language         `json:"language"`
	Sentiment    SentimentResult  `json:"sentiment"`
	HateSpeech   HateSpeechResult `json:"hateSpeech"`
	Keywords     []string         `json:"keywords"`
	CrimeRelated bool             `json:"crimeRelated"`
	ThreatLevel  ThreatLevel      `json:"threatLevel"`
}

// DefaultAnalysis is the safe fallback returned when an analysis stage
// fails. It is a valid looking but uninformative result so that one bad
// post never aborts a batch.
func DefaultAnalysis(text string) Analysis {
	return Analysis{
		Text:     text,
		Language: English,
		Sentiment: SentimentResult{
			Score:       0,
			Comparative: 0,
			Label:       Neutral,
			Confidence:  0.5,
		},
		HateSpeech: HateSpeechResult{
			Detected:   false,
			Confidence: 0,
			Categories: []HateCategory{},
		},
		Keywords:     []string{},
		CrimeRelated: false,
		ThreatLevel:  Low,
	}
}
