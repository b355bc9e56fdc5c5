package lexicon

import (
	"testing"

	"social-intel/domain"

	"github.com/stretchr/testify/require"
)

func TestWords_TokenizesAcrossScripts(t *testing.T) {
	req := require.New(t)

	req.Equal([]string{"police", "response", "in", "t", "nagar"},
		Words("Police response in T.Nagar!"))
	req.Equal([]string{"போலீஸ்", "நல்லா"}, Words("போலீஸ் நல்லா"))
	req.Equal([]string{"don't", "stop"}, Words("Don't stop."))
	req.Empty(Words("!!! ..."))
}

func TestSentimentTable_CoversNonEnglishOnly(t *testing.T) {
	req := require.New(t)

	req.Nil(SentimentTable(domain.English))
	for _, lang := range []domain.Language{domain.Tamil, domain.Hindi, domain.Telugu} {
		req.NotEmpty(SentimentTable(lang), "table for %s", lang)
	}

	req.Equal(2, SentimentTable(domain.Tamil)["நல்ல"])
	req.Equal(-3, SentimentTable(domain.Hindi)["खतरा"])
}

func TestCivicOverrides_PatchBothDirections(t *testing.T) {
	req := require.New(t)

	overrides := CivicOverrides()
	req.Equal(1.0, overrides["police"])
	req.Equal(3.0, overrides["rescue"])
	req.Equal(-4.0, overrides["murder"])
	req.Equal(-3.0, overrides["theft"])
}

func TestNegatorsAndBoosters(t *testing.T) {
	req := require.New(t)

	req.True(IsNegator("not"))
	req.True(IsNegator("don't"))
	req.False(IsNegator("very"))
	req.True(IsBooster("very"))
	req.False(IsBooster("not"))
}

func TestIsStopword(t *testing.T) {
	req := require.New(t)

	req.True(IsStopword("the"))
	req.True(IsStopword("with"))
	req.False(IsStopword("police"))
	req.False(IsStopword("போலீஸ்"))
}

func TestCrimeKeywords_SpanAllLanguages(t *testing.T) {
	req := require.New(t)

	keywords := CrimeKeywords()
	req.Contains(keywords, "police")
	req.Contains(keywords, "போலீஸ்")
	req.Contains(keywords, "पुलिस")
	req.Contains(keywords, "పోలీస్")
}
