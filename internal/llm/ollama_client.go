// ABOUTME: Locally-hosted model provider over the Ollama chat API
// ABOUTME: Plain HTTP, no API key; the host defaults to localhost
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/solace-app/solace/internal/config"
)

// DefaultOllamaModel is used when SOLACE_MODEL is unset
const DefaultOllamaModel = "llama3"

// OllamaClient talks to a locally-hosted model through the Ollama API
type OllamaClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewOllamaClient creates an Ollama-backed provider from configuration
func NewOllamaClient(cfg *config.Config) *OllamaClient {
	model := cfg.Model
	if model == "" {
		model = DefaultOllamaModel
	}
	return &OllamaClient{
		baseURL:    strings.TrimRight(cfg.OllamaHost, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Complete runs one therapy exchange
func (c *OllamaClient) Complete(ctx context.Context, contextText, userInput, directive string) (*Reply, error) {
	content, err := c.chat(ctx, systemPrompt(directive), userPrompt(contextText, userInput))
	if err != nil {
		return nil, err
	}
	return parseReply(content), nil
}

// Summarize condenses one month of journal entries
func (c *OllamaClient) Summarize(ctx context.Context, monthLabel, entriesText string) (string, error) {
	return c.chat(ctx, summaryPrompt, summaryUserPrompt(monthLabel, entriesText))
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Error   string        `json:"error,omitempty"`
}

func (c *OllamaClient) chat(ctx context.Context, system, user string) (string, error) {
	payload, err := json.Marshal(ollamaChatRequest{
		Model: c.model,
		Messages: []ollamaMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal ollama request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: ollama: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: ollama: read response: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: ollama: status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed ollamaChatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: ollama: parse response: %v", ErrUnavailable, err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("%w: ollama: %s", ErrUnavailable, parsed.Error)
	}
	if parsed.Message.Content == "" {
		return "", fmt.Errorf("%w: ollama: empty response", ErrUnavailable)
	}

	return parsed.Message.Content, nil
}
