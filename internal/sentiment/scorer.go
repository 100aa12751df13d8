// Package sentiment provides the pluggable headline scoring capability.
// Two strategies exist: a deterministic lexicon scorer and a remote
// FinBERT classifier. Aggregation code depends only on the Scorer
// interface, so swapping strategies is a config change.
package sentiment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stock-sentiment-api/internal/store"
	"stock-sentiment-api/internal/types"
)

// ErrScorerUnavailable reports that the scoring backend could not be reached.
// Callers degrade to an unavailable verdict instead of failing the request.
var ErrScorerUnavailable = errors.New("sentiment scorer unavailable")

// Scale identifies the numeric range a strategy reports polarity on.
type Scale string

const (
	// ScaleCompound is the lexicon range [-1, 1].
	ScaleCompound Scale = "compound"
	// ScaleClassifier is the classifier range [-100, 100].
	ScaleClassifier Scale = "classifier"
)

// Result is the outcome of scoring one piece of text.
type Result struct {
	Label      types.Label
	Polarity   float64
	Confidence float64 // 0..1
}

// Scorer scores a single text. Implementations are immutable after
// construction and safe for concurrent use.
type Scorer interface {
	Score(ctx context.Context, text string) (Result, error)
	MaxInputLen() int
	Scale() Scale
}

// New selects the configured strategy. Called once at startup; the
// returned scorer is shared across all requests.
func New(cfg *store.Config) (Scorer, error) {
	switch strings.ToUpper(cfg.Scorer.Strategy) {
	case "LEXICON":
		return NewLexicon(cfg.Scorer.MaxInputLen), nil
	case "FINBERT":
		return NewFinBERT(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported scorer strategy: %s", cfg.Scorer.Strategy)
	}
}

// Truncate caps text at max bytes. Truncation happens at call sites, not
// inside strategies, so it stays observable and testable on its own.
func Truncate(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	return text[:max]
}
