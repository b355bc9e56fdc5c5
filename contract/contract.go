//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"social-intel/domain"
)

// Analyzer is the single operation surface the engine exposes to its
// callers. The HTTP layer depends on this interface, not on the engine
// type, so handlers stay testable without lexicon initialization.
type Analyzer interface {
	Analyze(post domain.Post) (domain.Analysis, error)
	AnalyzeBatch(ctx context.Context, posts []domain.Post) ([]domain.Analysis, error)
	Languages() map[string]string
}
