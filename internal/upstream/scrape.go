package upstream

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"stock-sentiment-api/internal/apiclient"
	"stock-sentiment-api/internal/logger"
)

// Scraper collects headlines from public finance pages when the quote API
// comes back empty. Best-effort only: selectors rot, pages rate-limit.
type Scraper struct {
	timeout time.Duration
	client  *apiclient.Client
}

// NewScraper creates the fallback headline source.
func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{
		timeout: timeout,
		client: apiclient.NewClient(
			apiclient.WithTimeout(timeout),
			apiclient.WithHeader("User-Agent", browserUA),
		),
	}
}

// ScrapeNews crawls the ticker's news page and falls back to a Google
// News search when the crawl yields nothing.
func (s *Scraper) ScrapeNews(ctx context.Context, ticker string) ([]RawHeadline, error) {
	headlines, err := s.scrapeQuotePage(ctx, ticker)
	if err != nil {
		logger.ErrorWithErr(ctx, "Quote page scrape failed", err, "ticker", ticker)
	}
	if len(headlines) > 0 {
		return headlines, nil
	}

	return s.scrapeGoogleNews(ctx, ticker)
}

func (s *Scraper) scrapeQuotePage(ctx context.Context, ticker string) ([]RawHeadline, error) {
	var headlines []RawHeadline

	c := colly.NewCollector(
		colly.AllowedDomains("finance.yahoo.com"),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", browserUA)
	})

	c.OnHTML("li.stream-item, div.news-stream li", func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.ChildText("h3"))
		if title == "" {
			return
		}
		link := e.ChildAttr("a", "href")
		if link != "" && !strings.HasPrefix(link, "http") {
			link = "https://finance.yahoo.com" + link
		}
		headlines = append(headlines, RawHeadline{
			Title:     title,
			Publisher: strings.TrimSpace(e.ChildText("div.publishing")),
			Link:      link,
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Scraping error", err, "url", r.Request.URL.String())
	})

	pageURL := fmt.Sprintf("https://finance.yahoo.com/quote/%s/news", url.PathEscape(strings.ToUpper(ticker)))
	if err := c.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", pageURL, err)
	}
	c.Wait()

	return headlines, nil
}

// scrapeGoogleNews fetches one search result page and parses it directly.
func (s *Scraper) scrapeGoogleNews(ctx context.Context, ticker string) ([]RawHeadline, error) {
	searchURL := fmt.Sprintf("https://news.google.com/search?q=%s", url.QueryEscape(ticker+" stock"))
	resp, err := s.client.GET(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("%w: parse search page: %v", ErrUpstreamUnavailable, err)
	}

	var headlines []RawHeadline
	doc.Find("article").Each(func(_ int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Find("a.JtKRv, h3, h4").First().Text())
		if title == "" {
			return
		}
		link, _ := sel.Find("a").First().Attr("href")
		if strings.HasPrefix(link, "./") {
			link = "https://news.google.com" + strings.TrimPrefix(link, ".")
		}
		headlines = append(headlines, RawHeadline{
			Title:     title,
			Publisher: strings.TrimSpace(sel.Find("div.vr1PYe").First().Text()),
			Link:      link,
		})
	})

	logger.Debug(ctx, "Google News fallback", "ticker", ticker, "items", len(headlines))
	return headlines, nil
}
