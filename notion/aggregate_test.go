package notion

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titlePage(id, title, created string) Page {
	return Page{
		ID:          id,
		CreatedTime: created,
		Properties: map[string]Property{
			"Name": {Type: "title", Title: []RichText{{PlainText: title}}},
		},
	}
}

func newTestAggregator(t *testing.T, fake *fakeNotion, databaseIDs ...string) *Aggregator {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	return &Aggregator{
		databaseIDs: databaseIDs,
		client:      NewClient(Options{BaseURL: srv.URL, Token: "secret"}),
	}
}

func TestCollectAll(t *testing.T) {
	fake := newFakeNotion(10)
	fake.pages["db1"] = []Page{titlePage("p1", "A", "2024-01-01T00:00:00.000Z")}
	fake.pages["db2"] = []Page{
		titlePage("p2", "B", "2024-01-02T00:00:00.000Z"),
		titlePage("p3", "C", "2024-01-03T00:00:00.000Z"),
	}

	agg := newTestAggregator(t, fake, "db1", "db2")
	all := agg.CollectAll(context.Background())

	require.Len(t, all, 2)
	assert.Equal(t, "db1", all["database_1"].DatabaseID)
	assert.Equal(t, 1, all["database_1"].Count)
	assert.Equal(t, "db2", all["database_2"].DatabaseID)
	assert.Equal(t, 2, all["database_2"].Count)
	assert.Equal(t, "B", all["database_2"].Entries[0].Properties["Name"])
}

func TestCollectAll_noDatabasesConfigured(t *testing.T) {
	agg := newTestAggregator(t, newFakeNotion(10))

	all := agg.CollectAll(context.Background())
	assert.Empty(t, all)
}

func TestSearch_caseInsensitiveContainment(t *testing.T) {
	fake := newFakeNotion(10)
	fake.pages["db1"] = []Page{
		{
			ID: "p1",
			Properties: map[string]Property{
				"Awards": {Type: "rich_text", RichText: []RichText{{PlainText: "Best Picture"}}},
			},
		},
		titlePage("p2", "Unrelated", "2024-01-01T00:00:00.000Z"),
	}

	agg := newTestAggregator(t, fake, "db1")

	hits := agg.Search(context.Background(), "best")
	require.Len(t, hits, 1)
	assert.Equal(t, "db1", hits[0].DatabaseID)
	assert.Equal(t, "p1", hits[0].Entry.ID)

	assert.Empty(t, agg.Search(context.Background(), "nonexistent"))
}

func TestSearch_preservesEnumerationOrder(t *testing.T) {
	fake := newFakeNotion(10)
	fake.pages["db1"] = []Page{titlePage("p1", "match one", ""), titlePage("p2", "match two", "")}
	fake.pages["db2"] = []Page{titlePage("p3", "match three", "")}

	agg := newTestAggregator(t, fake, "db1", "db2")
	hits := agg.Search(context.Background(), "match")

	require.Len(t, hits, 3)
	assert.Equal(t, "p1", hits[0].Entry.ID)
	assert.Equal(t, "p2", hits[1].Entry.ID)
	assert.Equal(t, "p3", hits[2].Entry.ID)
}

func TestRecent(t *testing.T) {
	old := "2024-01-01T00:00:00.000Z"
	fresh := time.Now().UTC().Add(time.Hour).Format(time.RFC3339)

	fake := newFakeNotion(10)
	fake.pages["db1"] = []Page{titlePage("p1", "A", old), titlePage("p2", "B", fresh)}
	fake.pages["db2"] = []Page{titlePage("p3", "C", old)}

	agg := newTestAggregator(t, fake, "db1", "db2")

	t.Run("window filters by created time", func(t *testing.T) {
		recent := agg.Recent(context.Background(), 1)
		require.Len(t, recent, 1)
		require.Len(t, recent["db1"], 1)
		assert.Equal(t, "p2", recent["db1"][0].ID)
	})

	t.Run("zero days keeps only entries from now on", func(t *testing.T) {
		recent := agg.Recent(context.Background(), 0)
		require.Len(t, recent, 1)
		assert.Equal(t, "p2", recent["db1"][0].ID)
	})

	t.Run("huge window keeps everything", func(t *testing.T) {
		recent := agg.Recent(context.Background(), 365000)
		assert.Len(t, recent["db1"], 2)
		assert.Len(t, recent["db2"], 1)
	})

	t.Run("databases without qualifying entries are omitted", func(t *testing.T) {
		recent := agg.Recent(context.Background(), 1)
		_, ok := recent["db2"]
		assert.False(t, ok)
	})
}

func TestSearch_partialScanStillReturnsHits(t *testing.T) {
	fake := newFakeNotion(1)
	fake.pages["db1"] = []Page{titlePage("p1", "match", ""), titlePage("p2", "match", "")}
	fake.failAt["db1"] = 1 // second page fails, first survives

	agg := newTestAggregator(t, fake, "db1")
	hits := agg.Search(context.Background(), "match")

	require.Len(t, hits, 1)
	assert.Equal(t, "p1", hits[0].Entry.ID)
}
