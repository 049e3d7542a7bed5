package appconfig

import (
	"os"
	"strings"
)

// NotionVersion is the protocol version header sent with every Notion call.
const NotionVersion = "2022-06-28"

// AppConfig holds the process configuration. It is built once at startup from
// the environment and injected into providers, never mutated afterwards.
type AppConfig struct {
	NotionToken  string
	DatabaseIDs  []string
	GeminiAPIKey string
}

func ProvideAppConfig() *AppConfig {
	return &AppConfig{
		NotionToken:  os.Getenv("NOTION_API_KEY"),
		DatabaseIDs:  splitIDs(os.Getenv("DATABASE_IDS")),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
}

// splitIDs parses the comma separated DATABASE_IDS value. Blank segments are
// dropped, so an unset variable yields zero configured databases.
func splitIDs(csv string) []string {
	var ids []string
	for _, id := range strings.Split(csv, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
