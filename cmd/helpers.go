package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ziadkadry99/mermaidviz/internal/config"
	"github.com/ziadkadry99/mermaidviz/internal/flows"
	"github.com/ziadkadry99/mermaidviz/internal/llm"
	"github.com/ziadkadry99/mermaidviz/internal/sanitize"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `mermaidviz init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newFlowsService builds the generate/enhance service for the configured
// provider, rate limited to flows.rate_limit_rpm.
func newFlowsService(cfg *config.Config) (*flows.Service, error) {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("creating LLM provider: %w", err)
	}
	if cfg.Flows.RateLimitRPM > 0 {
		provider = llm.NewRateLimitedProvider(provider, cfg.Flows.RateLimitRPM)
	}

	policy, err := sanitize.ParsePolicy(cfg.Flows.StylingPolicy)
	if err != nil {
		return nil, err
	}

	return flows.NewService(provider, flows.Options{
		Model:       cfg.Model,
		Policy:      policy,
		Temperature: cfg.Flows.Temperature,
		MaxTokens:   cfg.Flows.MaxTokens,
	}), nil
}

// readSource reads a diagram from path, or from stdin when path is "" or "-".
func readSource(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// argOrEmpty returns args[0] or "".
func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.TrimSpace(args[0])
}
