// ABOUTME: OpenAI provider for therapy sessions and summarization
// ABOUTME: Chat completions with retry and exponential backoff
package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/solace-app/solace/internal/config"
	"github.com/solace-app/solace/internal/util"
)

// DefaultOpenAIModel is used when SOLACE_MODEL is unset
const DefaultOpenAIModel = "gpt-4o"

// OpenAIClient wraps the OpenAI API client with retry logic
type OpenAIClient struct {
	client     *openai.Client
	model      string
	maxRetries int
	retryDelay time.Duration
}

// NewOpenAIClient creates an OpenAI-backed provider from configuration
func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIClient{
		client:     openai.NewClient(cfg.OpenAIKey),
		model:      model,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}
}

// Complete runs one therapy exchange
func (c *OpenAIClient) Complete(ctx context.Context, contextText, userInput, directive string) (*Reply, error) {
	content, err := c.chat(ctx, systemPrompt(directive), userPrompt(contextText, userInput), 0.7)
	if err != nil {
		return nil, err
	}
	return parseReply(content), nil
}

// Summarize condenses one month of journal entries
func (c *OpenAIClient) Summarize(ctx context.Context, monthLabel, entriesText string) (string, error) {
	return c.chat(ctx, summaryPrompt, summaryUserPrompt(monthLabel, entriesText), 0.3)
}

func (c *OpenAIClient) chat(ctx context.Context, system, user string, temperature float32) (string, error) {
	var content string

	err := util.Do(ctx, c.maxRetries, c.retryDelay, func() error {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: system},
				{Role: openai.ChatMessageRoleUser, Content: user},
			},
			Temperature: temperature,
		})
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("no completion choices returned")
		}
		content = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", ErrUnavailable, err)
	}

	return content, nil
}
