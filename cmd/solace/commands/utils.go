// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Config loading, password prompt, vault unlock with maintenance pass
package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/solace-app/solace/internal/config"
	"github.com/solace-app/solace/internal/core"
	"github.com/solace-app/solace/internal/llm"
	"github.com/solace-app/solace/internal/store"
)

// loadConfig loads .env and the environment configuration,
// applying the --db flag override
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dbPathFlag != "" {
		cfg.DBPath = dbPathFlag
	}
	return cfg, nil
}

// promptPassword reads the vault password without echo.
// SOLACE_PASSWORD overrides the prompt for scripting; the core never
// stores the password either way.
func promptPassword() (string, error) {
	if p := os.Getenv("SOLACE_PASSWORD"); p != "" {
		return p, nil
	}

	fmt.Fprint(os.Stderr, "Vault password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	password := strings.TrimSpace(string(raw))
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

// unlockVault prompts for the password and opens the vault, running the
// condensation pass. Warnings and failures from the pass are printed, not
// fatal.
func unlockVault(cfg *config.Config) (*store.Store, error) {
	password, err := promptPassword()
	if err != nil {
		return nil, err
	}

	client, err := llm.New(cfg)
	if err != nil {
		return nil, err
	}

	var summarizer core.Summarizer
	if client != nil {
		summarizer = client
	}

	st, report, err := core.Unlock(cfg.DBPath, password, summarizer, cfg.Timeout, time.Now())
	if err != nil {
		return nil, err
	}

	for _, w := range report.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	for _, f := range report.Failures {
		fmt.Fprintf(os.Stderr, "Warning: could not condense %s; entries kept for next unlock\n", f)
	}

	return st, nil
}

// sessionClient builds the configured LLM client, failing when none is set
func sessionClient(cfg *config.Config) (llm.Client, error) {
	client, err := llm.New(cfg)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("no LLM provider configured; set SOLACE_PROVIDER (anthropic, openai, or ollama)")
	}
	return client, nil
}

// truncate shortens a string to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
