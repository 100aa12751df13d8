package analysis

import (
	"context"
	"strings"

	"stock-sentiment-api/internal/logger"
	"stock-sentiment-api/internal/sentiment"
	"stock-sentiment-api/internal/store"
	"stock-sentiment-api/internal/types"
)

// Engine holds the scoring strategy and tuning tables for one process.
// It has no mutable state, so concurrent requests share one instance.
type Engine struct {
	scorer         sentiment.Scorer
	earningsScorer sentiment.Scorer
	cfg            *store.Config
}

// NewEngine creates the aggregation engine. The earnings path always
// scores on the compound scale, so a lexicon scorer is kept alongside
// whatever general strategy is configured.
func NewEngine(cfg *store.Config, scorer sentiment.Scorer) *Engine {
	return &Engine{
		scorer:         scorer,
		earningsScorer: sentiment.NewLexicon(cfg.Scorer.MaxInputLen),
		cfg:            cfg,
	}
}

// verdictThreshold returns the bullish/bearish cut for the active scale.
func (e *Engine) verdictThreshold() float64 {
	if e.scorer.Scale() == sentiment.ScaleClassifier {
		return e.cfg.Analysis.Thresholds.Classifier
	}
	return e.cfg.Analysis.Thresholds.Lexicon
}

// AggregateGeneral scores a window of headlines and classifies the mean.
// An empty window is a valid terminal outcome (Neutral, zero articles),
// and a fully failed scorer degrades to Data Unavailable. Neither case
// is an error to the caller.
func (e *Engine) AggregateGeneral(ctx context.Context, ticker string, headlines []types.HeadlineRecord) types.TickerVerdict {
	ctx, span := logger.StartSpan(ctx, "aggregate-general")
	defer span.End()

	ticker = strings.ToUpper(ticker)
	verdict := types.TickerVerdict{
		Ticker:         ticker,
		FinalSentiment: types.VerdictNeutral,
		NewsAnalysis:   []types.ScoredHeadline{},
	}

	if len(headlines) == 0 {
		// No news at all: a neutral zero-article verdict, not a failure.
		return verdict
	}

	totalScore := 0.0
	scorerFailures := 0
	for _, h := range headlines {
		text := sentiment.Truncate(h.Text, e.scorer.MaxInputLen())
		result, err := e.scorer.Score(ctx, text)
		if err != nil {
			scorerFailures++
			logger.ErrorWithErr(ctx, "Failed to score headline", err, "ticker", ticker, "headline", h.Text)
			continue
		}

		verdict.NewsAnalysis = append(verdict.NewsAnalysis, types.ScoredHeadline{
			Headline:   h.Text,
			Source:     h.Source,
			Link:       h.Link,
			Sentiment:  result.Label,
			Confidence: result.Confidence,
			Score:      result.Polarity,
			Timestamp:  h.PublishedAt,
		})
		totalScore += result.Polarity
	}

	if len(verdict.NewsAnalysis) == 0 {
		if scorerFailures > 0 {
			verdict.FinalSentiment = types.VerdictUnavailable
		}
		return verdict
	}

	verdict.TotalArticles = len(verdict.NewsAnalysis)
	verdict.SentimentScore = totalScore / float64(verdict.TotalArticles)
	verdict.FinalSentiment = e.classify(verdict.SentimentScore)

	return verdict
}

// classify maps a mean score to a verdict. Strict inequality: a score
// exactly on the threshold stays Neutral.
func (e *Engine) classify(score float64) types.Verdict {
	threshold := e.verdictThreshold()
	switch {
	case score > threshold:
		return types.VerdictBullish
	case score < -threshold:
		return types.VerdictBearish
	default:
		return types.VerdictNeutral
	}
}
