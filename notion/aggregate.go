package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/linq"
	"github.com/SaiNageswarS/gemini-notion-api/appconfig"
	"go.uber.org/zap"
)

// DefaultRecentDays is the recency window used when a request does not name one.
const DefaultRecentDays = 7

// Aggregator scans the configured databases through the Client. Databases are
// scanned one after another: each page request depends on the previous
// response's cursor, so sequential fetching is a correctness requirement.
// Remote partial failures never surface as errors, only as fewer results.
type Aggregator struct {
	databaseIDs []string
	client      *Client
}

func ProvideAggregator(cfg *appconfig.AppConfig, client *Client) *Aggregator {
	return &Aggregator{
		databaseIDs: cfg.DatabaseIDs,
		client:      client,
	}
}

// CollectAll fetches and parses every entry of every configured database,
// keyed by a synthetic per-database label in enumeration order.
func (a *Aggregator) CollectAll(ctx context.Context) map[string]DatabaseDump {
	all := make(map[string]DatabaseDump, len(a.databaseIDs))

	for i, databaseID := range a.databaseIDs {
		entries := a.fetchEntries(ctx, databaseID)
		all[fmt.Sprintf("database_%d", i+1)] = DatabaseDump{
			DatabaseID: databaseID,
			Entries:    entries,
			Count:      len(entries),
		}
	}
	return all
}

// Search keeps an entry when the lower-cased JSON form of its properties
// contains the lower-cased keyword. Pure substring containment, no ranking;
// hits preserve database enumeration order then within-database order.
func (a *Aggregator) Search(ctx context.Context, keyword string) []SearchHit {
	needle := strings.ToLower(keyword)
	var hits []SearchHit

	for _, databaseID := range a.databaseIDs {
		for _, entry := range a.fetchEntries(ctx, databaseID) {
			serialized, err := json.Marshal(entry.Properties)
			if err != nil {
				continue
			}
			if strings.Contains(strings.ToLower(string(serialized)), needle) {
				hits = append(hits, SearchHit{DatabaseID: databaseID, Entry: entry})
			}
		}
	}
	return hits
}

// Recent keeps entries created within the last `days` days. Created timestamps
// are canonical ISO-8601 strings, so the cutoff comparison is lexical.
// Databases with no qualifying entries are omitted from the result.
func (a *Aggregator) Recent(ctx context.Context, days int) map[string][]Entry {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
	recent := make(map[string][]Entry)

	for _, databaseID := range a.databaseIDs {
		pages, _ := a.client.QueryAll(ctx, databaseID)

		var entries []Entry
		for _, page := range pages {
			if page.CreatedTime >= cutoff {
				entries = append(entries, ParsePage(page))
			}
		}
		if len(entries) > 0 {
			recent[databaseID] = entries
		}
	}
	return recent
}

// fetchEntries retrieves one database and parses every page, preserving the
// order the API returned them in.
func (a *Aggregator) fetchEntries(ctx context.Context, databaseID string) []Entry {
	pages, _ := a.client.QueryAll(ctx, databaseID)

	entries := make([]Entry, 0, len(pages))
	_, err := linq.Pipe2(
		linq.FromSlice(ctx, pages),
		linq.Select(ParsePage),
		linq.ForEach(func(entry Entry) {
			entries = append(entries, entry)
		}),
	)
	if err != nil {
		logger.Error("failed to parse database entries",
			zap.String("databaseId", databaseID), zap.Error(err))
	}
	return entries
}
