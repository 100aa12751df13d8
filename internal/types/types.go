package types

// Label is the per-headline sentiment class produced by a scorer.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// Verdict is the directional call presented to the dashboard.
type Verdict string

const (
	VerdictBullish     Verdict = "Bullish"
	VerdictBearish     Verdict = "Bearish"
	VerdictNeutral     Verdict = "Neutral"
	VerdictUnavailable Verdict = "Data Unavailable"
)

// HeadlineRecord is one sanitized upstream news item. Immutable once built;
// items with an empty title never become records.
type HeadlineRecord struct {
	Text        string `json:"text"`
	Source      string `json:"source"`
	Link        string `json:"link"`
	PublishedAt int64  `json:"published_at"`
}

// ScoredHeadline pairs a headline with the scorer output for it.
type ScoredHeadline struct {
	Headline   string  `json:"headline"`
	Source     string  `json:"source"`
	Link       string  `json:"link"`
	Sentiment  Label   `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Score      float64 `json:"score"`
	Timestamp  int64   `json:"timestamp"`
}

// TickerVerdict is the /analyze response body. Built fresh per request.
type TickerVerdict struct {
	Ticker         string           `json:"ticker"`
	FinalSentiment Verdict          `json:"final_sentiment"`
	SentimentScore float64          `json:"sentiment_score"`
	TotalArticles  int              `json:"total_articles"`
	NewsAnalysis   []ScoredHeadline `json:"news_analysis"`
}

// EarningsStatus describes whether a recent report was detected at all.
type EarningsStatus string

const (
	StatusReportFound    EarningsStatus = "report_found"
	StatusNoRecentReport EarningsStatus = "no_recent_report"
	StatusError          EarningsStatus = "error"
)

// EarningsCall is the earnings-specific verdict label.
type EarningsCall string

const (
	CallStrongBeat   EarningsCall = "Strong Beat"
	CallMissWeak     EarningsCall = "Miss / Weak"
	CallNeutral      EarningsCall = "Neutral"
	CallWaiting      EarningsCall = "Waiting for Report"
	CallNotAvailable EarningsCall = "Not Available"
)

// EarningsVerdict is the /earnings response body.
type EarningsVerdict struct {
	Status          EarningsStatus `json:"status"`
	Verdict         EarningsCall   `json:"verdict"`
	Color           string         `json:"color"`
	SampleHeadlines []string       `json:"sample_headlines"`
}

// CalendarEntry is one upcoming earnings date for a watch-listed ticker.
type CalendarEntry struct {
	Ticker           string `json:"ticker"`
	NextEarningsDate string `json:"next_earnings_date"`
	Estimate         string `json:"estimate,omitempty"`
}
