// Package upstream talks to the external news and calendar providers.
// Everything here is a collaborator from the aggregation engine's point
// of view: it can return data, return nothing, or fail, and the engine
// treats each case explicitly.
package upstream

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUpstreamUnavailable reports a failed or timed-out provider call.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrNoData reports a successful call that returned nothing usable.
	ErrNoData = errors.New("no upstream data")
)

// RawHeadline is one unvalidated provider news item. Any field may be
// missing; normalization happens in the analysis package.
type RawHeadline struct {
	Title               string `json:"title"`
	Publisher           string `json:"publisher"`
	Link                string `json:"link"`
	ProviderPublishTime int64  `json:"providerPublishTime"`
}

// CalendarInfo is the provider's view of a ticker's next earnings event.
// Providers report either a single date or a candidate range.
type CalendarInfo struct {
	EarningsDates []time.Time
	Estimate      string
}

// NextDate returns the earliest reported earnings date.
func (c *CalendarInfo) NextDate() (time.Time, bool) {
	if c == nil || len(c.EarningsDates) == 0 {
		return time.Time{}, false
	}
	next := c.EarningsDates[0]
	for _, d := range c.EarningsDates[1:] {
		if d.Before(next) {
			next = d
		}
	}
	return next, true
}

// Source supplies raw news and calendar records per ticker.
type Source interface {
	FetchNews(ctx context.Context, ticker string) ([]RawHeadline, error)
	FetchCalendar(ctx context.Context, ticker string) (*CalendarInfo, error)
}
