package upstream

import (
	"context"
	"strings"
	"sync"
	"time"

	"stock-sentiment-api/internal/logger"
)

// CachingSource wraps a Source with a per-ticker TTL cache. It is the
// only cross-request mutable state in the service; the aggregation
// engine itself stays stateless.
type CachingSource struct {
	inner Source
	ttl   time.Duration

	mu       sync.RWMutex
	news     map[string]*newsEntry
	calendar map[string]*calendarEntry
}

type newsEntry struct {
	items     []RawHeadline
	timestamp time.Time
}

type calendarEntry struct {
	info      *CalendarInfo
	timestamp time.Time
}

// NewCachingSource wraps inner with a TTL cache and starts the cleanup
// loop.
func NewCachingSource(inner Source, ttl time.Duration) *CachingSource {
	c := &CachingSource{
		inner:    inner,
		ttl:      ttl,
		news:     make(map[string]*newsEntry),
		calendar: make(map[string]*calendarEntry),
	}
	go c.cleanupLoop()
	return c
}

// FetchNews serves from cache while fresh, otherwise delegates. Provider
// failures are never cached.
func (c *CachingSource) FetchNews(ctx context.Context, ticker string) ([]RawHeadline, error) {
	key := strings.ToUpper(ticker)

	c.mu.RLock()
	entry, ok := c.news[key]
	c.mu.RUnlock()
	if ok && time.Since(entry.timestamp) <= c.ttl {
		logger.Debug(ctx, "Using cached news", "ticker", key, "items", len(entry.items))
		return entry.items, nil
	}

	items, err := c.inner.FetchNews(ctx, ticker)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.news[key] = &newsEntry{items: items, timestamp: time.Now()}
	c.mu.Unlock()

	return items, nil
}

// FetchCalendar serves from cache while fresh, otherwise delegates.
// A nil info (no upcoming date) is a valid cacheable answer.
func (c *CachingSource) FetchCalendar(ctx context.Context, ticker string) (*CalendarInfo, error) {
	key := strings.ToUpper(ticker)

	c.mu.RLock()
	entry, ok := c.calendar[key]
	c.mu.RUnlock()
	if ok && time.Since(entry.timestamp) <= c.ttl {
		return entry.info, nil
	}

	info, err := c.inner.FetchCalendar(ctx, ticker)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.calendar[key] = &calendarEntry{info: info, timestamp: time.Now()}
	c.mu.Unlock()

	return info, nil
}

func (c *CachingSource) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *CachingSource) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.news {
		if now.Sub(entry.timestamp) > c.ttl {
			delete(c.news, key)
		}
	}
	for key, entry := range c.calendar {
		if now.Sub(entry.timestamp) > c.ttl {
			delete(c.calendar, key)
		}
	}
}
