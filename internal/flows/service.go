// Package flows implements the two language-model backed diagram flows:
// generating a diagram from a description and enhancing an existing one.
package flows

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/ziadkadry99/mermaidviz/internal/llm"
	"github.com/ziadkadry99/mermaidviz/internal/sanitize"
	"github.com/ziadkadry99/mermaidviz/internal/theming"
)

// Options tunes the completion requests a Service sends.
type Options struct {
	Model       string
	Policy      sanitize.Policy
	Temperature float64
	MaxTokens   int
}

// Service runs the generate and enhance flows against one provider. Each
// call makes exactly one upstream request and is not retried.
type Service struct {
	provider llm.Provider
	opts     Options
}

// NewService creates a Service. A zero Policy means sanitize.PolicyModel.
func NewService(provider llm.Provider, opts Options) *Service {
	if opts.Policy == "" {
		opts.Policy = sanitize.PolicyModel
	}
	return &Service{provider: provider, opts: opts}
}

// GenerateInput is the request for Generate.
type GenerateInput struct {
	Description string `json:"description"`
}

// GenerateOutput is the result of Generate.
type GenerateOutput struct {
	MermaidCode string `json:"mermaidCode"`
}

// EnhanceInput is the request for Enhance.
type EnhanceInput struct {
	DiagramCode       string `json:"diagramCode"`
	EnhancementPrompt string `json:"enhancementPrompt"`
}

// EnhanceOutput is the result of Enhance.
type EnhanceOutput struct {
	EnhancedDiagramCode string `json:"enhancedDiagramCode"`
}

// Generate turns a natural-language description into Mermaid code.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (*GenerateOutput, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	raw, err := s.complete(ctx, "generate", generateMessages(description))
	if err != nil {
		return nil, ErrGenerationFailed
	}

	code := sanitize.Clean(raw, s.opts.Policy)
	if code == "" {
		log.Printf("flows: generate: model returned no diagram")
		return nil, ErrGenerationFailed
	}
	return &GenerateOutput{MermaidCode: code}, nil
}

// Enhance rewrites an existing diagram according to the user's request.
// An existing theme block is kept even if the model drops it, and ER
// diagrams never carry one.
func (s *Service) Enhance(ctx context.Context, in EnhanceInput) (*EnhanceOutput, error) {
	request := strings.TrimSpace(in.EnhancementPrompt)
	if request == "" {
		return nil, ErrEmptyPrompt
	}

	raw, err := s.complete(ctx, "enhance", enhanceMessages(in.DiagramCode, request))
	if err != nil {
		return nil, ErrEnhancementFailed
	}

	code := sanitize.Clean(raw, s.opts.Policy)
	if code == "" {
		log.Printf("flows: enhance: model returned no diagram")
		return nil, ErrEnhancementFailed
	}

	if block, ok := theming.ExtractThemeBlock(in.DiagramCode); ok && !theming.HasThemeBlock(code) {
		code = block + "\n" + code
	}
	if theming.DetectDiagramType(code) == theming.ERDiagram {
		code = sanitize.StripThemeBlocks(code)
	}
	return &EnhanceOutput{EnhancedDiagramCode: code}, nil
}

// complete sends one request and logs the full upstream error under a
// request id. Callers replace the error with a generic one.
func (s *Service) complete(ctx context.Context, flow string, messages []llm.Message) (string, error) {
	requestID := uuid.NewString()

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model:       s.opts.Model,
		Messages:    messages,
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	})
	if err != nil {
		log.Printf("flows: %s request %s to %s failed: %v", flow, requestID, s.provider.Name(), err)
		return "", err
	}

	log.Printf("flows: %s request %s: provider=%s model=%s tokens=%d/%d cost=$%.5f",
		flow, requestID, s.provider.Name(), resp.Model, resp.InputTokens, resp.OutputTokens,
		llm.EstimateCost(resp.Model, resp.InputTokens, resp.OutputTokens))
	return resp.Content, nil
}
