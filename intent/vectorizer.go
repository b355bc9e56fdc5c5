package intent

import (
	"hash/fnv"
	"strings"
)

// Vectorizer turns a raw string into a fixed-size numerical vector
// using the hashing trick: each word hashes to a vector index. Binary
// presence features are more robust than counts on short social posts.
type Vectorizer struct {
	size int
}

func NewVectorizer(size int) *Vectorizer {
	return &Vectorizer{size: size}
}

func (v *Vectorizer) Features(text string) []float64 {
	features := make([]float64, v.size)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(word))
		features[int(h.Sum32())%v.size] = 1.0
	}
	return features
}
