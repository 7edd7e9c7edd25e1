// Package llmtest provides an in-memory llm.Provider for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/ziadkadry99/mermaidviz/internal/llm"
)

// Provider records requests and replies with a canned response or error.
type Provider struct {
	mu    sync.Mutex
	calls []llm.CompletionRequest

	Reply string
	Err   error
}

// New returns a Provider that answers every request with reply.
func New(reply string) *Provider {
	return &Provider{Reply: reply}
}

func (p *Provider) Name() string { return "fake" }

func (p *Provider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, req)
	if p.Err != nil {
		return nil, p.Err
	}
	return &llm.CompletionResponse{
		Content:      p.Reply,
		InputTokens:  10,
		OutputTokens: 20,
		Model:        "fake-model",
		FinishReason: "stop",
	}, nil
}

// Calls returns a copy of the recorded requests.
func (p *Provider) Calls() []llm.CompletionRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]llm.CompletionRequest(nil), p.calls...)
}

// LastPrompt returns the content of the last user message received.
func (p *Provider) LastPrompt() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.calls) == 0 {
		return ""
	}
	msgs := p.calls[len(p.calls)-1].Messages
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == llm.RoleUser {
			return msgs[i].Content
		}
	}
	return ""
}
