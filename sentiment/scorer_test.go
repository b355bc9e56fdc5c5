package sentiment

import (
	"testing"

	"social-intel/domain"

	"github.com/stretchr/testify/require"
)

func TestScorer_English(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer()

	// theft(-3) + murder(-4) over 6 tokens.
	result := scorer.Score("theft and murder in the city", domain.English)
	req.Equal(-7.0, result.Score)
	req.InDelta(-7.0/6.0, result.Comparative, 1e-9)
	req.Equal(domain.Negative, result.Label)
	req.Equal(1.0, result.Confidence)
}

func TestScorer_EnglishNeutralBaseline(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer()

	result := scorer.Score("the meeting happens tomorrow", domain.English)
	req.Zero(result.Score)
	req.Zero(result.Comparative)
	req.Equal(domain.Neutral, result.Label)
	req.Equal(0.5, result.Confidence)
}

func TestScorer_TamilLexiconHit(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer()

	// நல்ல(+2) matched, 1 of 2 tokens.
	result := scorer.Score("நல்ல வேலை", domain.Tamil)
	req.Equal(2.0, result.Score)
	req.InDelta(1.0, result.Comparative, 1e-9)
	req.Equal(domain.Positive, result.Label)
	req.InDelta(0.9, result.Confidence, 1e-9)
}

func TestScorer_HindiLexiconHit(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer()

	// खतरा(-3) matched, 1 of 3 tokens.
	result := scorer.Score("खतरा है यहाँ", domain.Hindi)
	req.Equal(-3.0, result.Score)
	req.InDelta(-1.0, result.Comparative, 1e-9)
	req.Equal(domain.Negative, result.Label)
}

func TestScorer_CrossLanguageFallback(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer()

	// Tamil script with zero lexicon hits must degrade to the English
	// path at capped confidence, not to zero-confidence nonsense.
	result := scorer.Score("சென்னை நகரம்", domain.Tamil)
	req.Equal(domain.Neutral, result.Label)
	req.Equal(0.4, result.Confidence)
	req.Zero(result.Score)

	// Mixed script: English valence leaks through at a 0.7 discount.
	// bad(-3) twice over 4 tokens → raw -6, comparative -1.5.
	result = scorer.Score("சென்னை area bad bad", domain.Tamil)
	req.InDelta(-6.0*0.7, result.Score, 1e-9)
	req.InDelta(-1.5*0.7, result.Comparative, 1e-9)
	req.Equal(domain.Negative, result.Label)
	req.Equal(0.4, result.Confidence)
}

func TestScorer_LabelThresholdsIdenticalAcrossLanguages(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer()

	// பிரச்சனை(-1) over 10 tokens → comparative -0.1, inside the
	// neutral band.
	text := "பிரச்சனை ஒன்று இரண்டு மூன்று நான்கு ஐந்து ஆறு ஏழு எட்டு ஒன்பது"
	result := scorer.Score(text, domain.Tamil)
	req.InDelta(-0.1, result.Comparative, 1e-9)
	req.Equal(domain.Neutral, result.Label)
}
