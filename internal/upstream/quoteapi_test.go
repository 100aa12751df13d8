package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stock-sentiment-api/internal/store"
)

func quoteAPIWithServer(t *testing.T, handler http.HandlerFunc) *QuoteAPI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := store.Default()
	cfg.Upstream.BaseURL = srv.URL
	return NewQuoteAPI(cfg)
}

func TestFetchNewsParsesItems(t *testing.T) {
	api := quoteAPIWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/finance/search" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "AAPL" {
			t.Errorf("unexpected query ticker %q", got)
		}
		w.Write([]byte(`{
			"news": [
				{"title": "Apple rallies", "publisher": "Reuters", "link": "https://example.com/1", "providerPublishTime": 1700000000},
				{"title": "Second item", "publisher": "Bloomberg"}
			]
		}`))
	})

	items, err := api.FetchNews(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "Apple rallies" || items[0].Publisher != "Reuters" || items[0].ProviderPublishTime != 1700000000 {
		t.Errorf("unexpected first item: %+v", items[0])
	}
}

func TestFetchNewsEmptyFeed(t *testing.T) {
	api := quoteAPIWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"news": []}`))
	})

	items, err := api.FetchNews(context.Background(), "XYZ")
	if err != nil {
		t.Fatalf("empty feed is not an error, got %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestFetchNewsServerError(t *testing.T) {
	api := quoteAPIWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	})

	_, err := api.FetchNews(context.Background(), "AAPL")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestFetchNewsMalformedPayload(t *testing.T) {
	api := quoteAPIWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})

	_, err := api.FetchNews(context.Background(), "AAPL")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestFetchCalendarParsesDates(t *testing.T) {
	api := quoteAPIWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v10/finance/quoteSummary/AAPL" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"quoteSummary": {
				"result": [{
					"calendarEvents": {
						"earnings": {
							"earningsDate": [{"raw": 1767139200, "fmt": "2025-12-31"}, {"raw": 1767571200, "fmt": "2026-01-05"}],
							"earningsAverage": {"fmt": "1.62"}
						}
					}
				}]
			}
		}`))
	})

	info, err := api.FetchCalendar(context.Background(), "aapl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil {
		t.Fatal("expected calendar info")
	}
	if len(info.EarningsDates) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(info.EarningsDates))
	}
	if info.Estimate != "1.62" {
		t.Errorf("unexpected estimate %q", info.Estimate)
	}
	next, ok := info.NextDate()
	if !ok || next.Unix() != 1767139200 {
		t.Errorf("expected earliest date, got %v", next)
	}
}

func TestFetchCalendarNoEvents(t *testing.T) {
	api := quoteAPIWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary": {"result": []}}`))
	})

	info, err := api.FetchCalendar(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info != nil {
		t.Errorf("expected nil info when provider reports nothing, got %+v", info)
	}
}

func TestFetchCalendarIgnoresZeroRawDates(t *testing.T) {
	api := quoteAPIWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"quoteSummary": {
				"result": [{
					"calendarEvents": {
						"earnings": {"earningsDate": [{"raw": 0, "fmt": ""}]}
					}
				}]
			}
		}`))
	})

	info, err := api.FetchCalendar(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info != nil {
		t.Errorf("expected nil info when all dates are empty, got %+v", info)
	}
}
