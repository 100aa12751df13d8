package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"stock-sentiment-api/internal/apiclient"
	"stock-sentiment-api/internal/logger"
	"stock-sentiment-api/internal/store"
)

const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// QuoteAPI fetches news and calendar data from a Yahoo-style quote API.
type QuoteAPI struct {
	client *apiclient.Client
}

// NewQuoteAPI creates the primary JSON news source.
func NewQuoteAPI(cfg *store.Config) *QuoteAPI {
	return &QuoteAPI{
		client: apiclient.NewClient(
			apiclient.WithBaseURL(cfg.Upstream.BaseURL),
			apiclient.WithTimeout(time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second),
			apiclient.WithHeader("User-Agent", browserUA),
			apiclient.WithLogging(true),
		),
	}
}

// FetchNews returns recent raw news items for a ticker. A successful call
// with no items returns an empty slice, not an error.
func (q *QuoteAPI) FetchNews(ctx context.Context, ticker string) ([]RawHeadline, error) {
	path := fmt.Sprintf("/v1/finance/search?q=%s&newsCount=20&quotesCount=0", url.QueryEscape(ticker))
	resp, err := q.client.GET(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	var payload struct {
		News []RawHeadline `json:"news"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid news payload: %v", ErrUpstreamUnavailable, err)
	}

	logger.Debug(ctx, "Fetched upstream news", "ticker", ticker, "items", len(payload.News))
	return payload.News, nil
}

// FetchCalendar returns the next earnings event for a ticker, or nil when
// the provider reports none.
func (q *QuoteAPI) FetchCalendar(ctx context.Context, ticker string) (*CalendarInfo, error) {
	path := fmt.Sprintf("/v10/finance/quoteSummary/%s?modules=calendarEvents", url.PathEscape(strings.ToUpper(ticker)))
	resp, err := q.client.GET(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	var payload struct {
		QuoteSummary struct {
			Result []struct {
				CalendarEvents struct {
					Earnings struct {
						EarningsDate []struct {
							Raw int64  `json:"raw"`
							Fmt string `json:"fmt"`
						} `json:"earningsDate"`
						EarningsAverage struct {
							Fmt string `json:"fmt"`
						} `json:"earningsAverage"`
					} `json:"earnings"`
				} `json:"calendarEvents"`
			} `json:"result"`
		} `json:"quoteSummary"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid calendar payload: %v", ErrUpstreamUnavailable, err)
	}

	results := payload.QuoteSummary.Result
	if len(results) == 0 {
		return nil, nil
	}

	earnings := results[0].CalendarEvents.Earnings
	info := &CalendarInfo{Estimate: earnings.EarningsAverage.Fmt}
	for _, d := range earnings.EarningsDate {
		if d.Raw != 0 {
			info.EarningsDates = append(info.EarningsDates, time.Unix(d.Raw, 0).UTC())
		}
	}
	if len(info.EarningsDates) == 0 {
		return nil, nil
	}
	return info, nil
}
