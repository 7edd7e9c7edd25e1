package config

// QualityTier trades speed and cost against output quality.
type QualityTier string

const (
	QualityLite   QualityTier = "lite"
	QualityNormal QualityTier = "normal"
	QualityMax    QualityTier = "max"
)

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderGoogle     ProviderType = "google"
	ProviderOpenAI     ProviderType = "openai"
	ProviderOpenRouter ProviderType = "openrouter"
	ProviderOllama     ProviderType = "ollama"
)

// Config is the top-level configuration, corresponding to .mermaidviz.yml.
type Config struct {
	Provider ProviderType `yaml:"provider" koanf:"provider"`
	Model    string       `yaml:"model" koanf:"model"`
	Quality  QualityTier  `yaml:"quality" koanf:"quality"`
	Server   ServerConfig `yaml:"server" koanf:"server"`
	Flows    FlowsConfig  `yaml:"flows" koanf:"flows"`
	Check    CheckConfig  `yaml:"check" koanf:"check"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	Host            string   `yaml:"host" koanf:"host"`
	Port            int      `yaml:"port" koanf:"port"`
	AllowedOrigins  []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	RequestTimeoutS int      `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
}

// FlowsConfig tunes the generate and enhance flows.
type FlowsConfig struct {
	StylingPolicy string  `yaml:"styling_policy" koanf:"styling_policy"`
	Temperature   float64 `yaml:"temperature" koanf:"temperature"`
	MaxTokens     int     `yaml:"max_tokens" koanf:"max_tokens"`
	RateLimitRPM  int     `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
}

// CheckConfig holds defaults for the check command.
type CheckConfig struct {
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
	Strict  bool     `yaml:"strict" koanf:"strict"`
}
