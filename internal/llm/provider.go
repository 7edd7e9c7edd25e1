// Package llm talks to the language-model backends used by the diagram
// flows.
package llm

import "context"

// Provider is a chat-completion backend.
type Provider interface {
	// Complete sends one completion request. Implementations do not retry.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name identifies the backend in logs.
	Name() string
}

// Role is the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat turn.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest holds the parameters of a completion call. A zero Model
// means the provider's configured default.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// CompletionResponse is the text and usage returned by a provider.
type CompletionResponse struct {
	Content      string
	InputTokens  int
	OutputTokens int
	Model        string
	FinishReason string
}

const defaultMaxTokens = 4096

func pick(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}
