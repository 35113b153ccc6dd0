// ABOUTME: Centralized configuration for the solace CLI
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/solace-app/solace/internal/store"
)

// Provider names accepted by SOLACE_PROVIDER
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderOllama    = "ollama"
)

// Config holds all configuration for the solace CLI
type Config struct {
	// Vault settings
	DBPath string

	// Provider settings
	Provider     string
	Model        string
	AnthropicKey string
	OpenAIKey    string
	OllamaHost   string

	// Session settings
	ContextTokens int
	Timeout       time.Duration
	MaxRetries    int
	RetryDelay    time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DBPath:        getEnv("SOLACE_DB_PATH", store.DefaultDBPath()),
		Provider:      getEnv("SOLACE_PROVIDER", ""),
		Model:         os.Getenv("SOLACE_MODEL"),
		AnthropicKey:  os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OllamaHost:    getEnv("OLLAMA_HOST", "http://localhost:11434"),
		ContextTokens: getEnvInt("SOLACE_CONTEXT_TOKENS", 8000),
		Timeout:       getEnvDuration("SOLACE_LLM_TIMEOUT", 60*time.Second),
		MaxRetries:    getEnvInt("SOLACE_MAX_RETRIES", 3),
		RetryDelay:    getEnvDuration("SOLACE_RETRY_DELAY", 2*time.Second),
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges and provider/key pairing
func (c *Config) Validate() error {
	if c.ContextTokens < 1000 {
		return fmt.Errorf("SOLACE_CONTEXT_TOKENS must be at least 1000, got %d", c.ContextTokens)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("SOLACE_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	switch c.Provider {
	case "", ProviderOllama:
		// no key required; empty provider means journaling-only mode
	case ProviderAnthropic:
		if c.AnthropicKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for provider %q", c.Provider)
		}
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for provider %q", c.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q (expected anthropic, openai, or ollama)", c.Provider)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
