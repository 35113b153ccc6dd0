// ABOUTME: Tests for provider selection, reply parsing, and response cleanup
// ABOUTME: The notes delimiter split and greeting stripping are behavior contracts
package llm

import (
	"strings"
	"testing"

	"github.com/solace-app/solace/internal/config"
)

func TestNewProviderSelection(t *testing.T) {
	client, err := New(&config.Config{Provider: ""})
	if err != nil || client != nil {
		t.Errorf("New() with no provider = (%v, %v), want (nil, nil)", client, err)
	}

	client, err = New(&config.Config{Provider: config.ProviderOllama, OllamaHost: "http://localhost:11434"})
	if err != nil {
		t.Fatalf("New(ollama) error: %v", err)
	}
	if _, ok := client.(*OllamaClient); !ok {
		t.Errorf("New(ollama) = %T", client)
	}

	client, err = New(&config.Config{Provider: config.ProviderAnthropic, AnthropicKey: "sk-test"})
	if err != nil {
		t.Fatalf("New(anthropic) error: %v", err)
	}
	if _, ok := client.(*AnthropicClient); !ok {
		t.Errorf("New(anthropic) = %T", client)
	}

	client, err = New(&config.Config{Provider: config.ProviderOpenAI, OpenAIKey: "sk-test"})
	if err != nil {
		t.Fatalf("New(openai) error: %v", err)
	}
	if _, ok := client.(*OpenAIClient); !ok {
		t.Errorf("New(openai) = %T", client)
	}

	if _, err := New(&config.Config{Provider: "bard"}); err == nil {
		t.Error("New() accepted an unknown provider")
	}
}

func TestParseReplyWithNotes(t *testing.T) {
	raw := "You seem to be avoiding the conversation.\n" + notesDelimiter + "\nTheme: avoidance. Progress: slow."
	reply := parseReply(raw)

	if !strings.Contains(reply.Text, "avoiding the conversation") {
		t.Errorf("reply text = %q", reply.Text)
	}
	if strings.Contains(reply.Text, "Theme: avoidance") {
		t.Error("notes leaked into reply text")
	}
	if reply.NotesUpdate != "Theme: avoidance. Progress: slow." {
		t.Errorf("notes update = %q", reply.NotesUpdate)
	}
}

func TestParseReplyWithoutNotes(t *testing.T) {
	reply := parseReply("Just a reply, no notes.")
	if reply.NotesUpdate != "" {
		t.Errorf("notes update = %q, want empty", reply.NotesUpdate)
	}
	if reply.Text != "Just a reply, no notes." {
		t.Errorf("reply text = %q", reply.Text)
	}
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"greeting stripped", "Hello! Let's look at that pattern.", "Let's look at that pattern."},
		{"thank-you prefix stripped", "Thank you for sharing that. The pattern matters.", "The pattern matters."},
		{"trailing thanks stripped", "The pattern matters. Thank you!", "The pattern matters."},
		{"excess newlines collapsed", "first\n\n\n\nsecond", "first\n\nsecond"},
		{"clean text untouched", "The pattern matters.", "The pattern matters."},
	}
	for _, tt := range tests {
		if got := cleanResponse(tt.input); got != tt.want {
			t.Errorf("%s: cleanResponse(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestSystemPromptCarriesDirectiveAndNotesContract(t *testing.T) {
	directive := "You are a CBT therapist."
	prompt := systemPrompt(directive)
	if !strings.HasPrefix(prompt, directive) {
		t.Error("system prompt does not start with the directive")
	}
	if !strings.Contains(prompt, notesDelimiter) {
		t.Error("system prompt missing the notes delimiter contract")
	}
}
