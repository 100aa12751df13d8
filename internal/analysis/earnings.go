package analysis

import (
	"context"
	"strings"

	"stock-sentiment-api/internal/logger"
	"stock-sentiment-api/internal/sentiment"
	"stock-sentiment-api/internal/types"
)

const (
	colorGreen  = "green"
	colorRed    = "red"
	colorYellow = "yellow"
	colorGray   = "gray"
)

// DetectAndAggregate filters headlines for an earnings event and turns
// the matching subset into an earnings verdict. Scoring always uses the
// compound lexicon scale regardless of the general strategy.
func (e *Engine) DetectAndAggregate(ctx context.Context, headlines []types.HeadlineRecord) types.EarningsVerdict {
	ctx, span := logger.StartSpan(ctx, "detect-earnings")
	defer span.End()

	matched := e.filterEarnings(headlines)
	if len(matched) == 0 {
		return types.EarningsVerdict{
			Status:          types.StatusNoRecentReport,
			Verdict:         types.CallWaiting,
			Color:           colorGray,
			SampleHeadlines: []string{},
		}
	}

	maxScored := e.cfg.Earnings.MaxScored
	sum := 0.0
	scored := 0
	for i, h := range matched {
		if i >= maxScored {
			break
		}
		text := sentiment.Truncate(h.Text, e.earningsScorer.MaxInputLen())
		result, err := e.earningsScorer.Score(ctx, text)
		if err != nil {
			logger.ErrorWithErr(ctx, "Failed to score earnings headline", err, "headline", h.Text)
			continue
		}
		sum += result.Polarity
		scored++
	}

	if scored == 0 {
		return types.EarningsVerdict{
			Status:          types.StatusError,
			Verdict:         types.CallNotAvailable,
			Color:           colorGray,
			SampleHeadlines: []string{},
		}
	}

	avgScore := earningsMean(sum, len(matched))
	avgScore += e.keywordNudge(matched)

	verdict := types.EarningsVerdict{
		Status:          types.StatusReportFound,
		SampleHeadlines: sampleTexts(matched, e.cfg.Earnings.SampleHeadlines),
	}
	threshold := e.cfg.Earnings.CallThreshold
	switch {
	case avgScore >= threshold:
		verdict.Verdict = types.CallStrongBeat
		verdict.Color = colorGreen
	case avgScore <= -threshold:
		verdict.Verdict = types.CallMissWeak
		verdict.Color = colorRed
	default:
		verdict.Verdict = types.CallNeutral
		verdict.Color = colorYellow
	}

	return verdict
}

// earningsMean divides the capped-subset sum by the FULL match count,
// not the scored-subset count. Intentional: this reproduces the observed
// production behavior. Changing the divisor changes every verdict near
// the thresholds, so any correction happens here and nowhere else.
func earningsMean(sum float64, matchCount int) float64 {
	return sum / float64(matchCount)
}

// filterEarnings keeps headlines whose lowercased text contains any
// configured keyword. Substring match, case-insensitive, unanchored.
func (e *Engine) filterEarnings(headlines []types.HeadlineRecord) []types.HeadlineRecord {
	var matched []types.HeadlineRecord
	for _, h := range headlines {
		lower := strings.ToLower(h.Text)
		for _, kw := range e.cfg.Earnings.Keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, h)
				break
			}
		}
	}
	return matched
}

// keywordNudge applies the post-mean score adjustments. Both directions
// are checked independently; a headline set mentioning both a beat and a
// miss nets out to zero.
func (e *Engine) keywordNudge(matched []types.HeadlineRecord) float64 {
	var blob strings.Builder
	for _, h := range matched {
		blob.WriteString(strings.ToLower(h.Text))
		blob.WriteString(" ")
	}
	text := blob.String()

	nudge := 0.0
	for _, w := range e.cfg.Earnings.PositiveNudgeWords {
		if strings.Contains(text, w) {
			nudge += e.cfg.Earnings.Nudge
			break
		}
	}
	for _, w := range e.cfg.Earnings.NegativeNudgeWords {
		if strings.Contains(text, w) {
			nudge -= e.cfg.Earnings.Nudge
			break
		}
	}
	return nudge
}

func sampleTexts(headlines []types.HeadlineRecord, max int) []string {
	samples := make([]string, 0, max)
	for i, h := range headlines {
		if i >= max {
			break
		}
		samples = append(samples, h.Text)
	}
	return samples
}
