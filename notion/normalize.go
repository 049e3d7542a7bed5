package notion

import "strings"

// normalizeProperty flattens one typed property into a plain value: a string
// for single-valued tags, a []string for multi_select, nil for anything
// unrecognized. Missing nested payloads degrade to empty values, never panic.
func normalizeProperty(prop Property) any {
	switch prop.Type {
	case typeTitle:
		if len(prop.Title) == 0 {
			return ""
		}
		return prop.Title[0].PlainText
	case typeRichText:
		parts := make([]string, 0, len(prop.RichText))
		for _, run := range prop.RichText {
			parts = append(parts, run.PlainText)
		}
		return strings.Join(parts, " ")
	case typeURL:
		if prop.URL == nil {
			return ""
		}
		return *prop.URL
	case typeDate:
		if prop.Date == nil {
			return ""
		}
		return prop.Date.Start
	case typeSelect:
		if prop.Select == nil {
			return ""
		}
		return prop.Select.Name
	case typeMultiSelect:
		names := make([]string, 0, len(prop.MultiSelect))
		for _, opt := range prop.MultiSelect {
			names = append(names, opt.Name)
		}
		return names
	default:
		return nil
	}
}

// ParsePage normalizes a raw page. Properties that flatten to nil, an empty
// string or an empty list are dropped: they carry no search or context value.
func ParsePage(page Page) Entry {
	entry := Entry{
		ID:         page.ID,
		URL:        page.URL,
		Created:    page.CreatedTime,
		Properties: make(map[string]any),
	}

	for name, prop := range page.Properties {
		switch value := normalizeProperty(prop).(type) {
		case string:
			if value != "" {
				entry.Properties[name] = value
			}
		case []string:
			if len(value) > 0 {
				entry.Properties[name] = value
			}
		}
	}

	return entry
}
