package analysis

import (
	"context"
	"sort"
	"time"

	"stock-sentiment-api/internal/logger"
	"stock-sentiment-api/internal/types"
)

// Calendar collects upcoming earnings dates for the configured
// watch-list, sorted ascending, capped at the configured top-N. Each
// ticker lookup is independent: one failing ticker is skipped, never
// aborting the batch.
func (s *Service) Calendar(ctx context.Context) []types.CalendarEntry {
	op := logger.StartOperation(ctx, "earnings-calendar")
	ctx = op.Context()
	defer op.End()

	type dated struct {
		entry types.CalendarEntry
		date  time.Time
	}
	var entries []dated

	for _, ticker := range s.cfg.Watchlist {
		info, err := s.source.FetchCalendar(ctx, ticker)
		if err != nil {
			logger.ErrorWithErr(ctx, "Failed to fetch calendar, skipping ticker", err, "ticker", ticker)
			continue
		}
		next, ok := info.NextDate()
		if !ok {
			continue
		}
		entries = append(entries, dated{
			entry: types.CalendarEntry{
				Ticker:           ticker,
				NextEarningsDate: next.Format("2006-01-02"),
				Estimate:         info.Estimate,
			},
			date: next,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].date.Before(entries[j].date)
	})

	topN := s.cfg.Calendar.TopN
	result := make([]types.CalendarEntry, 0, topN)
	for i, d := range entries {
		if i >= topN {
			break
		}
		result = append(result, d.entry)
	}

	logger.Info(ctx, "Calendar built", "tickers", len(s.cfg.Watchlist), "entries", len(result))
	return result
}
