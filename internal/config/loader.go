package config

import (
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/ernestocullari/audience-pathways/internal/agent"
	"github.com/ernestocullari/audience-pathways/internal/resolver"
	"github.com/ernestocullari/audience-pathways/internal/server"
	"github.com/ernestocullari/audience-pathways/internal/sheets"
)

// LoadSheetsConfig loads Google Sheets configuration. Precedence:
// 1. Viper configuration (config file or PATHWAYS_ env vars)
// 2. Direct environment variables (GOOGLE_SHEETS_*)
// 3. Defaults
func LoadSheetsConfig() (*sheets.Config, error) {
	config := sheets.DefaultConfig()

	if v := viper.GetString("sheets.service_account_path"); v != "" {
		config.ServiceAccountPath = ExpandPath(v)
	}
	if v := viper.GetString("sheets.client_id"); v != "" {
		config.ClientID = v
	}
	if v := viper.GetString("sheets.client_secret"); v != "" {
		config.ClientSecret = v
	}
	if v := viper.GetString("sheets.refresh_token"); v != "" {
		config.RefreshToken = v
	}
	if v := viper.GetString("sheets.spreadsheet_id"); v != "" {
		config.SpreadsheetID = v
	}
	if v := viper.GetString("sheets.sheet_name"); v != "" {
		config.SheetName = v
	}
	if v := viper.GetInt("sheets.retry_attempts"); v > 0 {
		config.RetryAttempts = v
	}

	// Fall back to direct environment variables
	if config.ServiceAccountPath == "" {
		if v := os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH"); v != "" {
			config.ServiceAccountPath = ExpandPath(v)
		}
	}
	if config.ClientID == "" {
		config.ClientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	}
	if config.ClientSecret == "" {
		config.ClientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	}
	if config.RefreshToken == "" {
		config.RefreshToken = os.Getenv("GOOGLE_SHEETS_REFRESH_TOKEN")
	}
	if config.SpreadsheetID == "" {
		config.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")
	}
	if config.SheetName == "Taxonomy" {
		if v := os.Getenv("GOOGLE_SHEETS_SHEET_NAME"); v != "" {
			config.SheetName = v
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadResolverConfig loads resolution engine settings from Viper.
func LoadResolverConfig() resolver.Config {
	config := resolver.DefaultConfig()

	if v := viper.GetString("resolver.mode"); v != "" {
		config.Mode = resolver.Mode(v)
	}
	if v := viper.GetFloat64("resolver.threshold"); v > 0 {
		config.Threshold = v
	}
	if v := viper.GetInt("resolver.max_results"); v > 0 {
		config.MaxResults = v
	}

	return config
}

// LoadServerConfig loads HTTP server settings from Viper.
func LoadServerConfig() server.Config {
	config := server.DefaultConfig()

	if v := viper.GetString("server.addr"); v != "" {
		config.Addr = v
	}
	if v := viper.GetString("sheets.sheet_name"); v != "" {
		config.SheetName = v
	}

	return config
}

// LoadAgentConfig loads hosted agent proxy settings from Viper and the
// environment. Returns nil when no endpoint is configured; the proxy is
// optional.
func LoadAgentConfig() *agent.Config {
	endpoint := viper.GetString("agent.endpoint")
	if endpoint == "" {
		endpoint = os.Getenv("AGENT_ENDPOINT")
	}
	if endpoint == "" {
		return nil
	}

	apiKey := viper.GetString("agent.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("AGENT_API_KEY")
	}

	timeout := viper.GetDuration("agent.timeout")
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &agent.Config{
		Endpoint: endpoint,
		APIKey:   apiKey,
		Timeout:  timeout,
	}
}

// HistoryPath returns the configured history database path, or "" when
// history is disabled.
func HistoryPath() string {
	return ExpandPath(viper.GetString("history.db_path"))
}
