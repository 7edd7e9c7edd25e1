package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/mermaidviz/internal/sanitize"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".mermaidviz.yml"

// EnvPrefix prefixes environment overrides. A double underscore separates
// nesting levels: MERMAIDVIZ_SERVER__PORT sets server.port.
const EnvPrefix = "MERMAIDVIZ_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (MERMAIDVIZ_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps MERMAIDVIZ_FLOWS__MAX_TOKENS to flows.max_tokens.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validProviders = map[ProviderType]bool{
	ProviderGoogle:     true,
	ProviderOpenAI:     true,
	ProviderOpenRouter: true,
	ProviderOllama:     true,
}

var validQualityTiers = map[QualityTier]bool{
	QualityLite:   true,
	QualityNormal: true,
	QualityMax:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if !validProviders[c.Provider] {
		return fmt.Errorf("invalid provider %q: must be one of google, openai, openrouter, ollama", c.Provider)
	}

	if c.Model == "" {
		return fmt.Errorf("model is required")
	}

	if c.Quality != "" && !validQualityTiers[c.Quality] {
		return fmt.Errorf("invalid quality %q: must be one of lite, normal, max", c.Quality)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.RequestTimeoutS < 0 {
		return fmt.Errorf("server.request_timeout_seconds must be non-negative")
	}

	if _, err := sanitize.ParsePolicy(c.Flows.StylingPolicy); err != nil {
		return fmt.Errorf("flows.styling_policy: %w", err)
	}
	if c.Flows.Temperature < 0 || c.Flows.Temperature > 2 {
		return fmt.Errorf("flows.temperature must be between 0 and 2")
	}
	if c.Flows.MaxTokens < 0 {
		return fmt.Errorf("flows.max_tokens must be non-negative")
	}
	if c.Flows.RateLimitRPM < 0 {
		return fmt.Errorf("flows.rate_limit_rpm must be non-negative")
	}

	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// RequestTimeout is the per-request deadline of the HTTP server.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeoutS) * time.Second
}

// APIKeyEnvVar returns the environment variable holding the API key of
// the given provider, or "" when none is needed.
func APIKeyEnvVar(provider ProviderType) string {
	switch provider {
	case ProviderGoogle:
		return "GOOGLE_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderOpenRouter:
		return "OPENROUTER_API_KEY"
	default:
		return ""
	}
}
