package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// GoogleProvider implements Provider for the Gemini generateContent API.
type GoogleProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGoogleProvider creates a Gemini provider.
func NewGoogleProvider(apiKey, model string) *GoogleProvider {
	return &GoogleProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{},
	}
}

func (p *GoogleProvider) Name() string { return "google" }

type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      *geminiContent `json:"content"`
		FinishReason string         `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
}

func (p *GoogleProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := pick(req.Model, p.model)

	apiReq := geminiRequest{
		GenerationConfig: geminiGenerationConfig{
			MaxOutputTokens: req.MaxTokens,
			Temperature:     req.Temperature,
		},
	}

	var system []geminiPart
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			system = append(system, geminiPart{Text: msg.Content})
		case RoleUser:
			apiReq.Contents = append(apiReq.Contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: msg.Content}}})
		case RoleAssistant:
			apiReq.Contents = append(apiReq.Contents, geminiContent{Role: "model", Parts: []geminiPart{{Text: msg.Content}}})
		}
	}
	if len(system) > 0 {
		apiReq.SystemInstruction = &geminiContent{Parts: system}
	}
	if len(apiReq.Contents) == 0 {
		apiReq.Contents = []geminiContent{{Role: "user", Parts: []geminiPart{{Text: ""}}}}
	}

	// The key travels in a header so it never shows up in a logged URL.
	url := fmt.Sprintf("%s/%s:generateContent", strings.TrimSuffix(p.baseURL, "/"), model)
	var apiResp geminiResponse
	if err := postJSON(ctx, p.client, url, map[string]string{"x-goog-api-key": p.apiKey}, apiReq, &apiResp); err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}

	out := &CompletionResponse{
		InputTokens:  apiResp.UsageMetadata.PromptTokenCount,
		OutputTokens: apiResp.UsageMetadata.CandidatesTokenCount,
		Model:        model,
	}
	if len(apiResp.Candidates) > 0 {
		c := apiResp.Candidates[0]
		out.FinishReason = c.FinishReason
		if c.Content != nil {
			var b strings.Builder
			for _, part := range c.Content.Parts {
				b.WriteString(part.Text)
			}
			out.Content = b.String()
		}
	}
	return out, nil
}
