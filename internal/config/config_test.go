// ABOUTME: Tests for environment configuration loading and validation
// ABOUTME: Provider/key pairing and value ranges are enforced at load time
package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SOLACE_DB_PATH", "SOLACE_PROVIDER", "SOLACE_MODEL",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "OLLAMA_HOST",
		"SOLACE_CONTEXT_TOKENS", "SOLACE_LLM_TIMEOUT",
		"SOLACE_MAX_RETRIES", "SOLACE_RETRY_DELAY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Provider != "" {
		t.Errorf("default provider = %q, want journaling-only mode", cfg.Provider)
	}
	if cfg.DBPath == "" {
		t.Error("default DB path is empty")
	}
	if cfg.OllamaHost != "http://localhost:11434" {
		t.Errorf("default ollama host = %q", cfg.OllamaHost)
	}
	if cfg.ContextTokens != 8000 {
		t.Errorf("default context tokens = %d", cfg.ContextTokens)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("default timeout = %v", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("default max retries = %d", cfg.MaxRetries)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOLACE_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("SOLACE_MODEL", "claude-sonnet-4-20250514")
	t.Setenv("SOLACE_CONTEXT_TOKENS", "4000")
	t.Setenv("SOLACE_LLM_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Provider != ProviderAnthropic || cfg.AnthropicKey != "sk-test" {
		t.Errorf("provider config = %q/%q", cfg.Provider, cfg.AnthropicKey)
	}
	if cfg.Model != "claude-sonnet-4-20250514" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.ContextTokens != 4000 || cfg.Timeout != 30*time.Second {
		t.Errorf("tuning = %d tokens, %v timeout", cfg.ContextTokens, cfg.Timeout)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			ContextTokens: 8000,
			MaxRetries:    3,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"journaling-only mode", func(c *Config) {}, false},
		{"ollama needs no key", func(c *Config) { c.Provider = ProviderOllama }, false},
		{"anthropic with key", func(c *Config) { c.Provider = ProviderAnthropic; c.AnthropicKey = "k" }, false},
		{"anthropic without key", func(c *Config) { c.Provider = ProviderAnthropic }, true},
		{"openai with key", func(c *Config) { c.Provider = ProviderOpenAI; c.OpenAIKey = "k" }, false},
		{"openai without key", func(c *Config) { c.Provider = ProviderOpenAI }, true},
		{"unknown provider", func(c *Config) { c.Provider = "bard" }, true},
		{"tiny token budget", func(c *Config) { c.ContextTokens = 100 }, true},
		{"negative retries", func(c *Config) { c.MaxRetries = -1 }, true},
		{"excessive retries", func(c *Config) { c.MaxRetries = 11 }, true},
	}
	for _, tt := range tests {
		cfg := base()
		tt.mutate(cfg)
		err := cfg.Validate()
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}
