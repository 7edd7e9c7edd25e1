package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard asks for the main settings interactively and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to mermaidviz! Let's configure your project.")
	fmt.Println()

	cfg := DefaultConfig()

	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"google", "openai", "openrouter", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)

	qualityPrompt := promptui.Select{
		Label: "Select quality tier",
		Items: []string{
			"lite   (fast and cheap: " + PresetModel(cfg.Provider, QualityLite) + ")",
			"normal (balanced: " + PresetModel(cfg.Provider, QualityNormal) + ")",
			"max    (highest quality: " + PresetModel(cfg.Provider, QualityMax) + ")",
		},
	}
	qualityIdx, _, err := qualityPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("quality selection: %w", err)
	}
	tiers := []QualityTier{QualityLite, QualityNormal, QualityMax}
	cfg.Quality = tiers[qualityIdx]
	cfg.Model = PresetModel(cfg.Provider, cfg.Quality)

	policyPrompt := promptui.Select{
		Label: "Who styles generated diagrams",
		Items: []string{
			"model  (keep classDef/linkStyle the model writes)",
			"server (strip them; rely on theme blocks)",
		},
	}
	policyIdx, _, err := policyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("styling policy selection: %w", err)
	}
	cfg.Flows.StylingPolicy = []string{"model", "server"}[policyIdx]

	portPrompt := promptui.Prompt{
		Label:    "HTTP port for mermaidviz serve",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns for check (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if extra := splitAndTrim(excludeStr); len(extra) > 0 {
		cfg.Check.Exclude = append(append([]string(nil), DefaultExcludes...), extra...)
	}

	if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" && os.Getenv(envVar) == "" {
		fmt.Printf("\nNote: Set %s in your environment before running mermaidviz serve.\n", envVar)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("enter a port between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
