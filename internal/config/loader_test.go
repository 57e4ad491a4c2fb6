package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ernestocullari/audience-pathways/internal/resolver"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadSheetsConfig_FromViper(t *testing.T) {
	resetViper(t)
	viper.Set("sheets.service_account_path", "/tmp/sa.json")
	viper.Set("sheets.spreadsheet_id", "abc123")
	viper.Set("sheets.sheet_name", "Audiences")

	config, err := LoadSheetsConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/sa.json", config.ServiceAccountPath)
	assert.Equal(t, "abc123", config.SpreadsheetID)
	assert.Equal(t, "Audiences", config.SheetName)
}

func TestLoadSheetsConfig_EnvFallback(t *testing.T) {
	resetViper(t)
	t.Setenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH", "/tmp/env-sa.json")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_ID", "env-id")

	config, err := LoadSheetsConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env-sa.json", config.ServiceAccountPath)
	assert.Equal(t, "env-id", config.SpreadsheetID)
}

func TestLoadSheetsConfig_MissingAuth(t *testing.T) {
	resetViper(t)
	t.Setenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH", "")
	t.Setenv("GOOGLE_SHEETS_CLIENT_ID", "")
	t.Setenv("GOOGLE_SHEETS_CLIENT_SECRET", "")
	t.Setenv("GOOGLE_SHEETS_REFRESH_TOKEN", "")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_ID", "")

	_, err := LoadSheetsConfig()
	require.Error(t, err)
}

func TestLoadResolverConfig(t *testing.T) {
	resetViper(t)

	config := LoadResolverConfig()
	assert.Equal(t, resolver.ModeColumnPriority, config.Mode)
	assert.InDelta(t, resolver.DefaultThreshold, config.Threshold, 0.001)
	assert.Equal(t, 3, config.MaxResults)

	viper.Set("resolver.mode", "global")
	viper.Set("resolver.threshold", 50.0)
	viper.Set("resolver.max_results", 5)

	config = LoadResolverConfig()
	assert.Equal(t, resolver.ModeGlobal, config.Mode)
	assert.InDelta(t, 50, config.Threshold, 0.001)
	assert.Equal(t, 5, config.MaxResults)
}

func TestLoadServerConfig(t *testing.T) {
	resetViper(t)

	config := LoadServerConfig()
	assert.Equal(t, ":8080", config.Addr)

	viper.Set("server.addr", ":9090")
	config = LoadServerConfig()
	assert.Equal(t, ":9090", config.Addr)
}

func TestLoadAgentConfig(t *testing.T) {
	resetViper(t)
	t.Setenv("AGENT_ENDPOINT", "")
	t.Setenv("AGENT_API_KEY", "")

	assert.Nil(t, LoadAgentConfig(), "agent proxy is optional")

	viper.Set("agent.endpoint", "https://agents.example.com/run")
	viper.Set("agent.api_key", "key")
	viper.Set("agent.timeout", "90s")

	config := LoadAgentConfig()
	require.NotNil(t, config)
	assert.Equal(t, "https://agents.example.com/run", config.Endpoint)
	assert.Equal(t, "key", config.APIKey)
	assert.Equal(t, 90*time.Second, config.Timeout)
}

func TestHistoryPath(t *testing.T) {
	resetViper(t)
	assert.Empty(t, HistoryPath())

	viper.Set("history.db_path", "/var/lib/pathways/history.db")
	assert.Equal(t, "/var/lib/pathways/history.db", HistoryPath())
}

func TestExpandPath(t *testing.T) {
	t.Setenv("PATHWAYS_TEST_DIR", "/data")

	assert.Equal(t, "/data/history.db", ExpandPath("$PATHWAYS_TEST_DIR/history.db"))
	assert.Equal(t, "", ExpandPath(""))
	assert.NotContains(t, ExpandPath("~/config.yaml"), "~")
}
