// ABOUTME: Anthropic provider for therapy sessions and summarization
// ABOUTME: Messages API with retry and exponential backoff
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/solace-app/solace/internal/config"
	"github.com/solace-app/solace/internal/util"
)

// DefaultAnthropicModel is used when SOLACE_MODEL is unset
const DefaultAnthropicModel = "claude-sonnet-4-20250514"

const anthropicMaxTokens = 4000

// AnthropicClient wraps the Anthropic API client with retry logic
type AnthropicClient struct {
	client     anthropic.Client
	model      anthropic.Model
	maxRetries int
	retryDelay time.Duration
}

// NewAnthropicClient creates an Anthropic-backed provider from configuration
func NewAnthropicClient(cfg *config.Config) *AnthropicClient {
	model := cfg.Model
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &AnthropicClient{
		client:     anthropic.NewClient(option.WithAPIKey(cfg.AnthropicKey)),
		model:      anthropic.Model(model),
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}
}

// Complete runs one therapy exchange
func (c *AnthropicClient) Complete(ctx context.Context, contextText, userInput, directive string) (*Reply, error) {
	content, err := c.message(ctx, systemPrompt(directive), userPrompt(contextText, userInput))
	if err != nil {
		return nil, err
	}
	return parseReply(content), nil
}

// Summarize condenses one month of journal entries
func (c *AnthropicClient) Summarize(ctx context.Context, monthLabel, entriesText string) (string, error) {
	return c.message(ctx, summaryPrompt, summaryUserPrompt(monthLabel, entriesText))
}

func (c *AnthropicClient) message(ctx context.Context, system, user string) (string, error) {
	var content string

	err := util.Do(ctx, c.maxRetries, c.retryDelay, func() error {
		msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     c.model,
			MaxTokens: anthropicMaxTokens,
			System:    []anthropic.TextBlockParam{{Text: system}},
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
			},
		})
		if err != nil {
			return err
		}

		var sb strings.Builder
		for _, block := range msg.Content {
			if block.Text != "" {
				sb.WriteString(block.Text)
			}
		}
		if sb.Len() == 0 {
			return fmt.Errorf("no text content returned")
		}
		content = sb.String()
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: anthropic: %v", ErrUnavailable, err)
	}

	return content, nil
}
