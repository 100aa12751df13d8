package analysis

import (
	"strings"

	"stock-sentiment-api/internal/types"
	"stock-sentiment-api/internal/upstream"
)

// Normalize projects raw provider items into HeadlineRecords, dropping
// anything without a usable title. Purely a sanitizing projection: no
// scoring, no content filtering. At most window records are returned,
// in upstream order; window <= 0 means no cap.
func Normalize(raw []upstream.RawHeadline, window int) []types.HeadlineRecord {
	records := make([]types.HeadlineRecord, 0, len(raw))

	for _, item := range raw {
		if window > 0 && len(records) >= window {
			break
		}

		text := strings.TrimSpace(item.Title)
		if text == "" {
			continue
		}

		source := strings.TrimSpace(item.Publisher)
		if source == "" {
			source = "Unknown"
		}

		records = append(records, types.HeadlineRecord{
			Text:        text,
			Source:      source,
			Link:        item.Link,
			PublishedAt: item.ProviderPublishTime,
		})
	}

	return records
}
