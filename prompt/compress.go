// Package prompt turns aggregated Notion data into a bounded text block for
// the generation model, and classifies free-text chat messages into the
// aggregation mode that should ground them.
package prompt

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

const systemPreamble = `You are an AI assistant with access to Hollywood intelligence data.
Provide accurate, helpful answers about entertainment news, talent, and industry updates.
Focus on brand partnerships, PR opportunities, awards season coverage, and strategic insights.`

// Compress serializes aggregation results into a context block. A mapping
// becomes one "<key>: <pretty JSON>" line per key (keys sorted, Go maps have
// no stable order); anything else is stringified as pretty JSON. Bounding the
// amount of data is the caller's job, Compress never truncates.
func Compress(data any) string {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Map {
		return prettyJSON(data)
	}

	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		value := v.MapIndex(k).Interface()
		lines = append(lines, fmt.Sprintf("%v: %s", k.Interface(), prettyJSON(value)))
	}
	return strings.Join(lines, "\n")
}

func prettyJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// RecentContext frames a recency-window result for the prompt.
func RecentContext(days int, data any) string {
	return fmt.Sprintf("\n\nRecent data (last %d days):\n%s", days, Compress(data))
}

// SearchContext frames keyword search hits for the prompt.
func SearchContext(term string, hits any) string {
	return fmt.Sprintf("\n\nSearch results for '%s':\n%s", term, Compress(hits))
}

// Build assembles the final prompt: fixed preamble, optional data context,
// then the user turn.
func Build(dataContext, userMessage string) string {
	return fmt.Sprintf("%s\n\n%s\n\nUser: %s\n\nAssistant:", systemPreamble, dataContext, userMessage)
}
