package upstream

import (
	"context"
	"time"

	"stock-sentiment-api/internal/logger"
	"stock-sentiment-api/internal/store"
)

// Gateway is the production Source: quote API first, scraper fallback
// when the API returns nothing and scraping is enabled.
type Gateway struct {
	primary *QuoteAPI
	scraper *Scraper
}

// NewGateway builds the gateway from config.
func NewGateway(cfg *store.Config) *Gateway {
	g := &Gateway{primary: NewQuoteAPI(cfg)}
	if cfg.Upstream.ScrapeFallback {
		g.scraper = NewScraper(time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second)
	}
	return g
}

// FetchNews returns raw headlines for a ticker. An empty primary result
// is not an error; the fallback only runs when configured.
func (g *Gateway) FetchNews(ctx context.Context, ticker string) ([]RawHeadline, error) {
	items, err := g.primary.FetchNews(ctx, ticker)
	if err != nil {
		if g.scraper == nil {
			return nil, err
		}
		logger.Warn(ctx, "Primary news source failed, trying scraper", "ticker", ticker, "error", err)
		return g.scraper.ScrapeNews(ctx, ticker)
	}

	if len(items) == 0 && g.scraper != nil {
		logger.Info(ctx, "No articles from primary source, trying scraper", "ticker", ticker)
		scraped, scrapeErr := g.scraper.ScrapeNews(ctx, ticker)
		if scrapeErr != nil {
			logger.ErrorWithErr(ctx, "Scraper fallback failed", scrapeErr, "ticker", ticker)
			return items, nil
		}
		return scraped, nil
	}

	return items, nil
}

// FetchCalendar delegates to the quote API; there is no scrape fallback
// for calendar data.
func (g *Gateway) FetchCalendar(ctx context.Context, ticker string) (*CalendarInfo, error) {
	return g.primary.FetchCalendar(ctx, ticker)
}
