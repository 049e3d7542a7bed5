// Package notion talks to the Notion database query API and flattens its
// typed page properties into plain values usable for search and prompting.
package notion

// Recognized property type tags. Anything else normalizes to nil and is
// dropped from the parsed entry.
const (
	typeTitle       = "title"
	typeRichText    = "rich_text"
	typeURL         = "url"
	typeDate        = "date"
	typeSelect      = "select"
	typeMultiSelect = "multi_select"
)

// RichText is one text run of a title or rich_text property.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// DateValue is the payload of a date property.
type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// Option is one choice of a select or multi_select property.
type Option struct {
	Name string `json:"name"`
}

// Property is the tagged union the API uses for page properties: the Type tag
// selects which payload field is populated.
type Property struct {
	Type        string     `json:"type"`
	Title       []RichText `json:"title,omitempty"`
	RichText    []RichText `json:"rich_text,omitempty"`
	URL         *string    `json:"url,omitempty"`
	Date        *DateValue `json:"date,omitempty"`
	Select      *Option    `json:"select,omitempty"`
	MultiSelect []Option   `json:"multi_select,omitempty"`
}

// Page is one raw database entry as returned by the query endpoint.
type Page struct {
	ID          string              `json:"id"`
	URL         string              `json:"url"`
	CreatedTime string              `json:"created_time"`
	Properties  map[string]Property `json:"properties"`
}

// Entry is the normalized form of a Page. Properties holds only non-empty
// values, each either a string or a []string.
type Entry struct {
	ID         string         `json:"id"`
	URL        string         `json:"url"`
	Created    string         `json:"created"`
	Properties map[string]any `json:"properties"`
}

// SearchHit pairs a matched entry with the database it came from.
type SearchHit struct {
	DatabaseID string `json:"database_id"`
	Entry      Entry  `json:"entry"`
}

// DatabaseDump groups all parsed entries of one database for a full dump.
type DatabaseDump struct {
	DatabaseID string  `json:"database_id"`
	Entries    []Entry `json:"entries"`
	Count      int     `json:"count"`
}

type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}
