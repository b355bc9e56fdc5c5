package engine

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"social-intel/domain"
	"social-intel/errors"
	"social-intel/lexicon"

	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng := New(log, 4)
	require.NoError(t, eng.Init())
	return eng
}

func TestEngine_PositiveCivicPost(t *testing.T) {
	req := require.New(t)
	eng := newEngine(t)

	analysis, err := eng.Analyze(domain.Post{
		ID:      "p1",
		Content: "Police response was very quick in T.Nagar today. Impressed with Chennai Police!",
	})
	req.NoError(err)

	req.Equal(domain.English, analysis.Language)
	req.Equal(domain.Positive, analysis.Sentiment.Label)
	req.True(analysis.CrimeRelated)
	req.False(analysis.HateSpeech.Detected)
	req.Equal(domain.Low, analysis.ThreatLevel)
	req.Contains(analysis.Keywords, "police")
}

func TestEngine_ThreateningPost(t *testing.T) {
	req := require.New(t)
	eng := newEngine(t)

	analysis, err := eng.Analyze(domain.Post{
		ID:      "p2",
		Content: "I hate this place. Very dangerous area. Kill you if you come here",
	})
	req.NoError(err)

	req.True(analysis.HateSpeech.Detected)
	req.Greater(analysis.HateSpeech.Confidence, 0.3)
	req.Contains(analysis.HateSpeech.Categories, domain.Threats)
	req.Contains(analysis.HateSpeech.Categories, domain.Aggressive)
	req.Equal(domain.Critical, analysis.ThreatLevel)
	req.Equal(domain.Negative, analysis.Sentiment.Label)
}

func TestEngine_ValidationBeforeAnalysis(t *testing.T) {
	req := require.New(t)
	eng := newEngine(t)

	_, err := eng.Analyze(domain.Post{ID: "p3", Content: ""})
	req.ErrorIs(err, errors.ErrEmptyContent)

	_, err = eng.Analyze(domain.Post{ID: "p4", Content: "   "})
	req.ErrorIs(err, errors.ErrEmptyContent)
}

func TestEngine_RequiresInit(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng := New(log, 4)

	_, err := eng.Analyze(domain.Post{Content: "hello"})
	req.ErrorIs(err, errors.ErrNotInitialized)

	_, err = eng.AnalyzeBatch(context.Background(), []domain.Post{{Content: "hello"}})
	req.ErrorIs(err, errors.ErrNotInitialized)
}

func TestEngine_InitIsIdempotent(t *testing.T) {
	req := require.New(t)
	eng := newEngine(t)

	req.NoError(eng.Init())
	req.NoError(eng.Init())
}

func TestEngine_AnalyzeIsIdempotent(t *testing.T) {
	req := require.New(t)
	eng := newEngine(t)

	post := domain.Post{ID: "p5", Content: "Theft reported near the railway station, police are investigating"}
	first, err := eng.Analyze(post)
	req.NoError(err)
	second, err := eng.Analyze(post)
	req.NoError(err)

	req.Equal(first, second)
}

func TestEngine_TamilFallbackPath(t *testing.T) {
	req := require.New(t)
	eng := newEngine(t)

	// Tamil script with no lexicon hits: language stays ta, sentiment
	// degrades through the English path at capped confidence.
	analysis, err := eng.Analyze(domain.Post{
		ID:      "p6",
		Content: "சென்னை நகரம் ரயில் நிலையம்",
	})
	req.NoError(err)

	req.Equal(domain.Tamil, analysis.Language)
	req.Equal(0.4, analysis.Sentiment.Confidence)
	req.Equal(domain.Neutral, analysis.Sentiment.Label)
}

func TestEngine_LanguageHintShortCircuitsDetection(t *testing.T) {
	req := require.New(t)
	eng := newEngine(t)

	analysis, err := eng.Analyze(domain.Post{
		ID:       "p7",
		Content:  "Situation is very bad here",
		Language: "ta",
	})
	req.NoError(err)

	// The hint wins; the English text goes through the Tamil chain and
	// lands on the cross-language fallback.
	req.Equal(domain.Tamil, analysis.Language)
	req.Equal(0.4, analysis.Sentiment.Confidence)
}

func TestEngine_StageFailureReturnsSafeDefault(t *testing.T) {
	req := require.New(t)
	eng := newEngine(t)

	// Force a stage panic: the aggregation boundary must swallow it and
	// hand back the safe default, never propagate.
	eng.scorer = nil

	post := domain.Post{ID: "p-broken", Content: "any text at all"}
	analysis, err := eng.Analyze(post)
	req.NoError(err)
	req.Equal(domain.DefaultAnalysis(post.Content), analysis)
}

func TestEngine_BatchPreservesOrderAndIsolatesFailures(t *testing.T) {
	req := require.New(t)
	eng := newEngine(t)

	posts := []domain.Post{
		{ID: "b1", Content: "Police response was very quick today"},
		{ID: "b2", Content: "   "},
		{ID: "b3", Content: "I hate this place. Kill you if you come here"},
	}

	results, err := eng.AnalyzeBatch(context.Background(), posts)
	req.NoError(err)
	req.Len(results, 3)

	req.Equal(domain.Positive, results[0].Sentiment.Label)
	// The invalid middle item degrades to the safe default without
	// aborting the batch.
	req.Equal(domain.DefaultAnalysis("   "), results[1])
	req.Equal(domain.Critical, results[2].ThreatLevel)
}

func TestEngine_BatchMatchesSingleAnalysis(t *testing.T) {
	req := require.New(t)
	eng := newEngine(t)

	posts := []domain.Post{
		{ID: "c1", Content: "Robbery at the market, very scary situation"},
		{ID: "c2", Content: "நல்ல வேலை நன்றி"},
		{ID: "c3", Content: "Weather is pleasant this evening"},
	}

	results, err := eng.AnalyzeBatch(context.Background(), posts)
	req.NoError(err)

	for i, post := range posts {
		single, err := eng.Analyze(post)
		req.NoError(err)
		req.Equal(single, results[i], "post %s", post.ID)
	}
}

func TestEngine_BatchRejectsEmptySlice(t *testing.T) {
	req := require.New(t)
	eng := newEngine(t)

	_, err := eng.AnalyzeBatch(context.Background(), nil)
	req.ErrorIs(err, errors.ErrEmptyBatch)
}

func TestEngine_ClassifyIntent(t *testing.T) {
	req := require.New(t)
	eng := newEngine(t)

	label, score, err := eng.ClassifyIntent(domain.Post{
		ID:      "i1",
		Content: "போலீஸ் நல்லா வேலை செய்யுறாங்க",
	})
	req.NoError(err)
	req.Equal(lexicon.IntentPositive, label)
	req.Greater(score, 0.0)

	_, _, err = eng.ClassifyIntent(domain.Post{
		ID:      "i2",
		Content: "police are doing a great job",
	})
	req.ErrorIs(err, errors.ErrIntentNotSupported)
}

func TestEngine_Languages(t *testing.T) {
	req := require.New(t)
	eng := newEngine(t)

	langs := eng.Languages()
	req.Equal(map[string]string{
		"en": "English",
		"ta": "Tamil",
		"hi": "Hindi",
		"te": "Telugu",
	}, langs)
}
