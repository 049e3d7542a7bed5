package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress_mapBecomesOneLinePerKey(t *testing.T) {
	out := Compress(map[string]int{"b": 2, "a": 1})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a: 1", lines[0])
	assert.Equal(t, "b: 2", lines[1])
}

func TestCompress_mapValuesArePrettyJSON(t *testing.T) {
	out := Compress(map[string][]string{"tags": {"x", "y"}})

	assert.True(t, strings.HasPrefix(out, "tags: ["))
	assert.Contains(t, out, "\"x\"")
	assert.Contains(t, out, "\"y\"")
}

func TestCompress_nonMapIsStringified(t *testing.T) {
	type hit struct {
		ID string `json:"id"`
	}
	out := Compress([]hit{{ID: "p1"}})

	assert.Contains(t, out, "\"id\": \"p1\"")
}

func TestBuild(t *testing.T) {
	out := Build("\n\nRecent data (last 7 days):\ndb1: []", "show me recent news")

	assert.True(t, strings.HasPrefix(out, "You are an AI assistant"))
	assert.Contains(t, out, "Recent data (last 7 days)")
	assert.Contains(t, out, "User: show me recent news")
	assert.True(t, strings.HasSuffix(out, "Assistant:"))
}

func TestRecentContext(t *testing.T) {
	out := RecentContext(30, map[string]int{"db1": 3})

	assert.True(t, strings.HasPrefix(out, "\n\nRecent data (last 30 days):\n"))
	assert.Contains(t, out, "db1: 3")
}

func TestSearchContext(t *testing.T) {
	out := SearchContext("awards", []string{"hit"})

	assert.True(t, strings.HasPrefix(out, "\n\nSearch results for 'awards':\n"))
}
