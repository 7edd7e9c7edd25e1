package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// OllamaProvider implements Provider for a local Ollama server.
type OllamaProvider struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllamaProvider creates a provider for the Ollama server at baseURL.
func NewOllamaProvider(baseURL, model string) *OllamaProvider {
	return &OllamaProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		client:  &http.Client{},
	}
}

func (p *OllamaProvider) Name() string { return "ollama" }

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  struct {
		Temperature float64 `json:"temperature,omitempty"`
		NumPredict  int     `json:"num_predict,omitempty"`
	} `json:"options"`
}

type ollamaChatResponse struct {
	Message         ollamaMessage `json:"message"`
	Model           string        `json:"model"`
	DoneReason      string        `json:"done_reason"`
	PromptEvalCount int           `json:"prompt_eval_count"`
	EvalCount       int           `json:"eval_count"`
}

func (p *OllamaProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	apiReq := ollamaChatRequest{Model: pick(req.Model, p.model)}
	apiReq.Options.Temperature = req.Temperature
	apiReq.Options.NumPredict = req.MaxTokens
	for _, msg := range req.Messages {
		apiReq.Messages = append(apiReq.Messages, ollamaMessage{Role: string(msg.Role), Content: msg.Content})
	}

	var apiResp ollamaChatResponse
	if err := postJSON(ctx, p.client, p.baseURL+"/api/chat", nil, apiReq, &apiResp); err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}

	return &CompletionResponse{
		Content:      apiResp.Message.Content,
		InputTokens:  apiResp.PromptEvalCount,
		OutputTokens: apiResp.EvalCount,
		Model:        apiResp.Model,
		FinishReason: apiResp.DoneReason,
	}, nil
}
