package analysis

import (
	"context"
	"math"
	"testing"

	"stock-sentiment-api/internal/sentiment"
	"stock-sentiment-api/internal/store"
	"stock-sentiment-api/internal/types"
)

func earningsEngine(earnings *fakeScorer) *Engine {
	return &Engine{
		scorer:         &fakeScorer{},
		earningsScorer: earnings,
		cfg:            store.Default(),
	}
}

func TestEarningsNoMatchIsWaiting(t *testing.T) {
	scorer := &fakeScorer{}
	engine := earningsEngine(scorer)

	verdict := engine.DetectAndAggregate(context.Background(), records(
		"CEO rings opening bell",
		"New product announced",
	))

	if verdict.Status != types.StatusNoRecentReport {
		t.Errorf("expected no_recent_report, got %s", verdict.Status)
	}
	if verdict.Verdict != types.CallWaiting {
		t.Errorf("expected Waiting verdict, got %s", verdict.Verdict)
	}
	if verdict.Color != "gray" {
		t.Errorf("expected gray, got %s", verdict.Color)
	}
	if len(verdict.SampleHeadlines) != 0 {
		t.Errorf("expected no samples, got %v", verdict.SampleHeadlines)
	}
	if len(scorer.seen) != 0 {
		t.Errorf("no scoring should happen without matches, saw %v", scorer.seen)
	}
}

func TestEarningsSingleMatchStrongBeat(t *testing.T) {
	engine := earningsEngine(&fakeScorer{results: map[string]sentiment.Result{
		"Quarterly results released": {Label: types.LabelPositive, Polarity: 0.6, Confidence: 0.8},
	}})

	verdict := engine.DetectAndAggregate(context.Background(), records("Quarterly results released"))

	if verdict.Status != types.StatusReportFound {
		t.Errorf("expected report_found, got %s", verdict.Status)
	}
	if verdict.Verdict != types.CallStrongBeat {
		t.Errorf("expected Strong Beat at 0.6/1, got %s", verdict.Verdict)
	}
	if verdict.Color != "green" {
		t.Errorf("expected green, got %s", verdict.Color)
	}
}

func TestEarningsKeywordCaseInsensitiveWithBeatNudge(t *testing.T) {
	// Scorer contributes nothing; the verdict is carried by the nudge alone.
	engine := earningsEngine(&fakeScorer{})

	verdict := engine.DetectAndAggregate(context.Background(), records("Q2 EARNINGS beat expectations"))

	if verdict.Status != types.StatusReportFound {
		t.Fatalf("uppercase headline should match keyword, got %s", verdict.Status)
	}
	if verdict.Verdict != types.CallStrongBeat {
		t.Errorf("expected Strong Beat from +0.25 nudge, got %s", verdict.Verdict)
	}
}

func TestEarningsMissNudge(t *testing.T) {
	engine := earningsEngine(&fakeScorer{})

	verdict := engine.DetectAndAggregate(context.Background(), records("Earnings miss sends shares lower"))

	if verdict.Verdict != types.CallMissWeak {
		t.Errorf("expected Miss / Weak from -0.25 nudge, got %s", verdict.Verdict)
	}
	if verdict.Color != "red" {
		t.Errorf("expected red, got %s", verdict.Color)
	}
}

func TestEarningsNudgesApplyIndependently(t *testing.T) {
	engine := earningsEngine(&fakeScorer{})

	verdict := engine.DetectAndAggregate(context.Background(), records(
		"Earnings beat on revenue",
		"Profit miss on margins",
	))

	// +0.25 and -0.25 both apply and cancel out.
	if verdict.Verdict != types.CallNeutral {
		t.Errorf("expected Neutral from cancelling nudges, got %s", verdict.Verdict)
	}
	if verdict.Color != "yellow" {
		t.Errorf("expected yellow, got %s", verdict.Color)
	}
}

func TestEarningsMeanDividesByFullMatchCount(t *testing.T) {
	if got := earningsMean(1.0, 7); math.Abs(got-0.142857) > 1e-5 {
		t.Errorf("expected 1.0/7, got %f", got)
	}
}

func TestEarningsQuirkSevenMatchesFiveScored(t *testing.T) {
	// 7 matching headlines, only the first 5 scored at 0.06 each.
	// sum 0.30 over the FULL count 7 is ~0.0429, under the 0.05 cut:
	// Neutral. Dividing by the scored count 5 would give 0.06 and flip
	// the verdict to Strong Beat.
	results := map[string]sentiment.Result{}
	texts := []string{
		"earnings update one", "earnings update two", "earnings update three",
		"earnings update four", "earnings update five", "earnings update six",
		"earnings update seven",
	}
	for _, text := range texts {
		results[text] = sentiment.Result{Label: types.LabelPositive, Polarity: 0.06, Confidence: 0.5}
	}
	scorer := &fakeScorer{results: results}
	engine := earningsEngine(scorer)

	verdict := engine.DetectAndAggregate(context.Background(), records(texts...))

	if len(scorer.seen) != 5 {
		t.Errorf("expected exactly 5 headlines scored, got %d", len(scorer.seen))
	}
	if verdict.Verdict != types.CallNeutral {
		t.Errorf("expected Neutral under full-count division, got %s", verdict.Verdict)
	}
}

func TestEarningsSampleHeadlinesAreFirstThreeMatches(t *testing.T) {
	engine := earningsEngine(&fakeScorer{})

	verdict := engine.DetectAndAggregate(context.Background(), records(
		"Not about anything relevant",
		"Earnings update one",
		"Earnings update two",
		"Earnings update three",
		"Earnings update four",
	))

	if len(verdict.SampleHeadlines) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(verdict.SampleHeadlines))
	}
	if verdict.SampleHeadlines[0] != "Earnings update one" {
		t.Errorf("samples should start at the first match, got %q", verdict.SampleHeadlines[0])
	}
}

func TestEarningsScorerFailureIsError(t *testing.T) {
	engine := earningsEngine(&fakeScorer{failAll: true})

	verdict := engine.DetectAndAggregate(context.Background(), records("Earnings report out"))

	if verdict.Status != types.StatusError {
		t.Errorf("expected error status, got %s", verdict.Status)
	}
	if verdict.Verdict != types.CallNotAvailable {
		t.Errorf("expected Not Available, got %s", verdict.Verdict)
	}
}
