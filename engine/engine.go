// Package engine wires the four analysis stages together: language
// identification, sentiment scoring, risk detection and aggregation.
// All stages are pure functions over lexicons frozen at Init time, so
// any number of texts can be analyzed concurrently without locking.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"social-intel/contract"
	"social-intel/domain"
	"social-intel/errors"
	"social-intel/intent"
	"social-intel/keywords"
	"social-intel/langid"
	"social-intel/lexicon"
	"social-intel/risk"
	"social-intel/sentiment"
)

// Static assertion: the engine is the canonical Analyzer implementation.
var _ contract.Analyzer = (*Engine)(nil)

const DefaultBatchWorkers = 8

type Engine struct {
	log     *slog.Logger
	workers int

	initOnce sync.Once
	initErr  error
	ready    atomic.Bool

	scorer *sentiment.Scorer
	hate   *risk.HateSpeechDetector
	crime  *risk.CrimeDetector
	intent *intent.Classifier
}

// New builds an unstarted engine. Init must complete before the first
// analysis call.
func New(log *slog.Logger, batchWorkers int) *Engine {
	if batchWorkers <= 0 {
		batchWorkers = DefaultBatchWorkers
	}
	return &Engine{log: log, workers: batchWorkers}
}

// Init loads the lexicons, builds the keyword automata and fits the
// intent model. It is idempotent: second and subsequent calls are
// no-ops returning the first outcome. A failure here is a deployment
// problem and must halt startup, unlike per-request failures.
func (e *Engine) Init() error {
	e.initOnce.Do(func() {
		hate, err := risk.NewHateSpeechDetector()
		if err != nil {
			e.initErr = err
			return
		}
		crime, err := risk.NewCrimeDetector()
		if err != nil {
			e.initErr = err
			return
		}

		e.scorer = sentiment.NewScorer()
		e.hate = hate
		e.crime = crime
		e.intent = intent.Fit(lexicon.IntentCorpus())
		e.ready.Store(true)

		e.log.Info("text intelligence engine initialized",
			"languages", len(domain.SupportedLanguages()),
			"batch_workers", e.workers)
	})
	return e.initErr
}

// Analyze runs the full pipeline on one post. Validation failures are
// returned to the caller; failures inside the stages degrade to the
// safe default result instead of propagating.
func (e *Engine) Analyze(post domain.Post) (domain.Analysis, error) {
	if !e.ready.Load() {
		return domain.Analysis{}, errors.ErrNotInitialized
	}
	if err := post.Validate(); err != nil {
		return domain.Analysis{}, err
	}
	return e.analyze(post), nil
}

// AnalyzeBatch analyzes all posts concurrently, bounded by the worker
// budget, and returns results in input order. Items are isolated: an
// invalid or failing post yields the safe default, never an aborted
// batch.
func (e *Engine) AnalyzeBatch(ctx context.Context, posts []domain.Post) ([]domain.Analysis, error) {
	if !e.ready.Load() {
		return nil, errors.ErrNotInitialized
	}
	if len(posts) == 0 {
		return nil, errors.ErrEmptyBatch
	}

	results := make([]domain.Analysis, len(posts))
	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup

	for i, post := range posts {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, post domain.Post) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := post.Validate(); err != nil {
				e.log.Warn("invalid post in batch, using safe default",
					"post_id", post.ID, "err", err)
				results[i] = domain.DefaultAnalysis(post.Content)
				return
			}
			results[i] = e.analyze(post)
		}(i, post)
	}

	wg.Wait()
	return results, nil
}

// ClassifyIntent runs the example-based intent model for the post's
// language. English has no intent model; the sentiment scorer covers it.
func (e *Engine) ClassifyIntent(post domain.Post) (string, float64, error) {
	if !e.ready.Load() {
		return "", 0, errors.ErrNotInitialized
	}
	if err := post.Validate(); err != nil {
		return "", 0, err
	}

	lang := e.resolveLanguage(post)
	if lang == domain.English {
		return "", 0, errors.ErrIntentNotSupported
	}
	label, score, ok := e.intent.Predict(lang, post.Content)
	if !ok {
		return lexicon.IntentNeutral, 0, nil
	}
	return label, score, nil
}

// Languages reports the supported code to display name mapping.
func (e *Engine) Languages() map[string]string {
	return domain.SupportedLanguages()
}

// analyze is the aggregation boundary: a panic in any stage is
// converted to the safe default result and logged with the post's
// identifier, never re-thrown. Callers batch-process social feeds; one
// malformed post must not abort the batch.
func (e *Engine) analyze(post domain.Post) (result domain.Analysis) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("analysis stage failed, returning safe default",
				"post_id", post.ID, "panic", r)
			result = domain.DefaultAnalysis(post.Content)
		}
	}()

	lang := e.resolveLanguage(post)
	sentimentResult := e.scorer.Score(post.Content, lang)
	hateResult := e.hate.Detect(post.Content)
	crimeRelated := e.crime.Related(post.Content)

	return domain.Analysis{
		Text:         post.Content,
		Language:     lang,
		Sentiment:    sentimentResult,
		HateSpeech:   hateResult,
		Keywords:     keywords.Extract(post.Content),
		CrimeRelated: crimeRelated,
		ThreatLevel:  domain.ThreatLevelFor(sentimentResult, hateResult, crimeRelated),
	}
}

// resolveLanguage honors a valid caller hint and falls back to
// statistical detection otherwise.
func (e *Engine) resolveLanguage(post domain.Post) domain.Language {
	if lang, ok := domain.ParseLanguage(post.Language); ok {
		return lang
	}
	return langid.Identify(post.Content)
}
