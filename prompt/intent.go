package prompt

import (
	"strings"

	"github.com/SaiNageswarS/go-collection-boot/ds"
)

// fetchTriggers are the phrases that mark a message as wanting grounded data.
var fetchTriggers = []string{"search", "find", "recent", "latest", "show me", "what"}

// termTriggers are the words whose following token becomes the search term.
var termTriggers = ds.NewSet[string]()

func init() {
	for _, w := range []string{"search", "find", "about"} {
		termTriggers.Add(w)
	}
}

// Intent is the aggregation mode a chat message asks for. At most one of
// Recent/SearchTerm is set; recency wins over keyword search.
type Intent struct {
	Recent     bool
	Days       int
	SearchTerm string
}

// Classify sniffs trigger words out of a free-text message. The heuristics
// are deliberately literal: "recent"/"latest" select the recency window
// ("week" keeps 7 days, "month" widens to 30), otherwise the single token
// right after "search"/"find"/"about" becomes the search term. Multi-word
// search terms are intentionally not supported.
func Classify(message string) Intent {
	lower := strings.ToLower(message)

	wantsData := false
	for _, trigger := range fetchTriggers {
		if strings.Contains(lower, trigger) {
			wantsData = true
			break
		}
	}
	if !wantsData {
		return Intent{}
	}

	if strings.Contains(lower, "recent") || strings.Contains(lower, "latest") {
		days := 7
		if strings.Contains(lower, "week") {
			days = 7
		} else if strings.Contains(lower, "month") {
			days = 30
		}
		return Intent{Recent: true, Days: days}
	}

	words := strings.Fields(message)
	for i, word := range words {
		if termTriggers.Contains(strings.ToLower(word)) && i+1 < len(words) {
			return Intent{SearchTerm: words[i+1]}
		}
	}
	return Intent{}
}
