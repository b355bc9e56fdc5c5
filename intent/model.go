// Package intent carries the example-based intent model for the
// non-English languages. Fitting is a one-time initialization step over
// a fixed embedded corpus, not a training workflow; the model is
// immutable afterwards.
package intent

import (
	"math"

	"social-intel/domain"
	"social-intel/lexicon"
)

// featureSize must stay fixed across fit and predict.
const featureSize = 512

// labelOrder makes prediction deterministic when similarities tie.
var labelOrder = []string{
	lexicon.IntentPositive,
	lexicon.IntentNegative,
	lexicon.IntentNeutral,
}

// Classifier is a nearest-centroid model over hashed word features,
// one centroid set per language.
type Classifier struct {
	vectorizer *Vectorizer
	centroids  map[domain.Language]map[string][]float64
}

// Fit builds per-language label centroids from the labeled corpus.
func Fit(corpus []lexicon.TrainingDoc) *Classifier {
	vectorizer := NewVectorizer(featureSize)

	sums := make(map[domain.Language]map[string][]float64)
	counts := make(map[domain.Language]map[string]int)
	for _, doc := range corpus {
		if sums[doc.Language] == nil {
			sums[doc.Language] = make(map[string][]float64)
			counts[doc.Language] = make(map[string]int)
		}
		features := vectorizer.Features(doc.Text)
		centroid := sums[doc.Language][doc.Label]
		if centroid == nil {
			centroid = make([]float64, featureSize)
			sums[doc.Language][doc.Label] = centroid
		}
		for i, f := range features {
			centroid[i] += f
		}
		counts[doc.Language][doc.Label]++
	}

	for lang, labels := range sums {
		for label, centroid := range labels {
			n := float64(counts[lang][label])
			for i := range centroid {
				centroid[i] /= n
			}
		}
	}

	return &Classifier{vectorizer: vectorizer, centroids: sums}
}

// Predict returns the best matching intent label for the text and its
// cosine similarity. ok is false when the language has no model or the
// text shares no vocabulary with any centroid.
func (c *Classifier) Predict(lang domain.Language, text string) (label string, score float64, ok bool) {
	labels := c.centroids[lang]
	if labels == nil {
		return "", 0, false
	}

	features := c.vectorizer.Features(text)
	best := ""
	bestScore := 0.0
	for _, candidate := range labelOrder {
		centroid, exists := labels[candidate]
		if !exists {
			continue
		}
		if sim := cosine(features, centroid); sim > bestScore {
			best = candidate
			bestScore = sim
		}
	}
	if best == "" {
		return "", 0, false
	}
	return best, bestScore, true
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
