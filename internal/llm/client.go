// ABOUTME: Provider contract for therapy sessions and month summarization
// ABOUTME: All three provider families are driven through this one interface
package llm

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/solace-app/solace/internal/config"
)

// ErrUnavailable signals a provider failure: network, auth, rate limit, or
// timeout. Callers treat it as retryable; user data is never lost behind it.
var ErrUnavailable = errors.New("llm: service unavailable")

// Reply is a provider response: the therapeutic reply plus an optional
// structured notes update extracted from the delimited section.
type Reply struct {
	Text        string
	NotesUpdate string
}

// Client is the uniform boundary to an LLM provider
type Client interface {
	// Complete runs one therapy exchange against the assembled context
	Complete(ctx context.Context, contextText, userInput, directive string) (*Reply, error)
	// Summarize condenses one month of journal entries into a summary
	Summarize(ctx context.Context, monthLabel, entriesText string) (string, error)
}

// New selects a provider from configuration.
// Returns nil with no error when no provider is configured: journaling
// still works, sessions and LLM summaries are unavailable.
func New(cfg *config.Config) (Client, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case config.ProviderAnthropic:
		return NewAnthropicClient(cfg), nil
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg), nil
	case config.ProviderOllama:
		return NewOllamaClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// systemPrompt builds the session system prompt from a framework directive
func systemPrompt(directive string) string {
	return directive + conductPrompt + notesInstruction
}

// userPrompt builds the session user message
func userPrompt(contextText, userInput string) string {
	return fmt.Sprintf("CONTEXT:\n%s\n\nUSER QUERY: %s", contextText, userInput)
}

// summaryUserPrompt builds the condensation user message
func summaryUserPrompt(monthLabel, entriesText string) string {
	return fmt.Sprintf("Journal entries for %s:\n\n%s", monthLabel, entriesText)
}

// parseReply splits raw model output into reply text and notes update
func parseReply(content string) *Reply {
	text, notes, found := strings.Cut(content, notesDelimiter)
	reply := &Reply{Text: cleanResponse(text)}
	if found {
		reply.NotesUpdate = strings.TrimSpace(notes)
	}
	return reply
}

// Redundant-greeting patterns stripped from replies
var greetingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(Hello|Hi|Hey|Greetings|Good morning|Good afternoon|Good evening)[,.!\s]*`),
	regexp.MustCompile(`(?i)^Thank you.*?for (sharing|your|this).*?\.\s*`),
	regexp.MustCompile(`(?i)(Thank you|Thanks)[.,!\s]*$`),
}

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// cleanResponse strips leading greetings and trailing thank-yous
func cleanResponse(text string) string {
	cleaned := strings.TrimSpace(text)
	for _, p := range greetingPatterns {
		cleaned = p.ReplaceAllString(cleaned, "")
	}
	cleaned = excessNewlines.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}
