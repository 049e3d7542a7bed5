package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvideAppConfig(t *testing.T) {
	t.Setenv("NOTION_API_KEY", "notion-token")
	t.Setenv("DATABASE_IDS", "db1, db2,,db3")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg := ProvideAppConfig()

	assert.Equal(t, "notion-token", cfg.NotionToken)
	assert.Equal(t, []string{"db1", "db2", "db3"}, cfg.DatabaseIDs)
	assert.Equal(t, "gemini-key", cfg.GeminiAPIKey)
}

func TestProvideAppConfig_unsetDatabaseIDs(t *testing.T) {
	t.Setenv("DATABASE_IDS", "")

	cfg := ProvideAppConfig()
	assert.Empty(t, cfg.DatabaseIDs)
}
