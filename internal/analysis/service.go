package analysis

import (
	"context"
	"strings"

	"stock-sentiment-api/internal/logger"
	"stock-sentiment-api/internal/store"
	"stock-sentiment-api/internal/types"
	"stock-sentiment-api/internal/upstream"
)

// Service runs the fetch -> normalize -> score -> aggregate pipeline per
// request. Upstream failures degrade into well-formed verdicts; the
// service never returns an error to the transport layer.
type Service struct {
	source upstream.Source
	engine *Engine
	cfg    *store.Config
}

// NewService wires the pipeline.
func NewService(cfg *store.Config, engine *Engine, source upstream.Source) *Service {
	return &Service{
		source: source,
		engine: engine,
		cfg:    cfg,
	}
}

// Analyze produces the general sentiment verdict for a ticker.
// Policy for "no news at all": a Neutral zero-article verdict, not a
// failure. The transport layer may turn that into a 404 in strict mode.
func (s *Service) Analyze(ctx context.Context, ticker string) types.TickerVerdict {
	op := logger.StartOperation(ctx, "analyze-ticker")
	ctx = op.Context()
	defer op.End()

	ticker = strings.ToUpper(ticker)

	raw, err := s.source.FetchNews(ctx, ticker)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to fetch news", err, "ticker", ticker)
		return types.TickerVerdict{
			Ticker:         ticker,
			FinalSentiment: types.VerdictUnavailable,
			NewsAnalysis:   []types.ScoredHeadline{},
		}
	}

	headlines := Normalize(raw, s.cfg.Analysis.HeadlineWindow)
	verdict := s.engine.AggregateGeneral(ctx, ticker, headlines)

	logger.Verdict(ctx, ticker, string(verdict.FinalSentiment), verdict.SentimentScore, verdict.TotalArticles)
	return verdict
}

// Earnings produces the earnings-event verdict for a ticker.
func (s *Service) Earnings(ctx context.Context, ticker string) types.EarningsVerdict {
	op := logger.StartOperation(ctx, "analyze-earnings")
	ctx = op.Context()
	defer op.End()

	ticker = strings.ToUpper(ticker)

	raw, err := s.source.FetchNews(ctx, ticker)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to fetch news for earnings", err, "ticker", ticker)
		return types.EarningsVerdict{
			Status:          types.StatusError,
			Verdict:         types.CallNotAvailable,
			Color:           colorGray,
			SampleHeadlines: []string{},
		}
	}

	// The earnings filter sees every usable headline, not just the
	// general-analysis window.
	headlines := Normalize(raw, 0)
	verdict := s.engine.DetectAndAggregate(ctx, headlines)

	logger.Info(ctx, "Earnings verdict", "ticker", ticker, "status", verdict.Status, "verdict", verdict.Verdict)
	return verdict
}
