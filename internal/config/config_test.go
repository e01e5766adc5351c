package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "selections.db"))
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.OpenAIBaseURL != "https://api.openai.com" {
		t.Errorf("OpenAIBaseURL = %q, want default", cfg.OpenAIBaseURL)
	}
	if cfg.OpenAIModel != "gpt-4o" {
		t.Errorf("OpenAIModel = %q, want gpt-4o", cfg.OpenAIModel)
	}
	if cfg.TavilyAPIKey != "" {
		t.Errorf("TavilyAPIKey = %q, want empty", cfg.TavilyAPIKey)
	}
	if cfg.SearchTimeout != 5*time.Second {
		t.Errorf("SearchTimeout = %v, want 5s", cfg.SearchTimeout)
	}
	if cfg.APIPort != "9000" {
		t.Errorf("APIPort = %q, want 9000", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OPENAI_BASE_URL", "https://llm.internal.example")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("TAVILY_API_KEY", "tvly-test")
	t.Setenv("SEARCH_TIMEOUT_SECONDS", "10")
	t.Setenv("API_PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.OpenAIBaseURL != "https://llm.internal.example" {
		t.Errorf("OpenAIBaseURL = %q", cfg.OpenAIBaseURL)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q", cfg.OpenAIModel)
	}
	if cfg.TavilyAPIKey != "tvly-test" {
		t.Errorf("TavilyAPIKey = %q", cfg.TavilyAPIKey)
	}
	if cfg.SearchTimeout != 10*time.Second {
		t.Errorf("SearchTimeout = %v", cfg.SearchTimeout)
	}
	if cfg.APIPort != "8080" {
		t.Errorf("APIPort = %q", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q", cfg.LogFormat)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "selections.db"))

	if _, err := Load(); err == nil {
		t.Error("Load() expected error when OPENAI_API_KEY is unset")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric timeout", "SEARCH_TIMEOUT_SECONDS", "soon"},
		{"zero timeout", "SEARCH_TIMEOUT_SECONDS", "0"},
		{"negative timeout", "SEARCH_TIMEOUT_SECONDS", "-3"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ROUTINE_ADVISOR_TEST_VAR", "set")

	if got := getEnv("ROUTINE_ADVISOR_TEST_VAR", "fallback"); got != "set" {
		t.Errorf("getEnv() = %q, want %q", got, "set")
	}
	if got := getEnv("ROUTINE_ADVISOR_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnv() = %q, want %q", got, "fallback")
	}
}
