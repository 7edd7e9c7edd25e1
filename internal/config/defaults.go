package config

// qualityPresets maps each provider and tier to a model.
var qualityPresets = map[ProviderType]map[QualityTier]string{
	ProviderGoogle: {
		QualityLite:   "gemini-2.5-flash-lite",
		QualityNormal: "gemini-2.5-flash",
		QualityMax:    "gemini-2.5-pro",
	},
	ProviderOpenAI: {
		QualityLite:   "gpt-4o-mini",
		QualityNormal: "gpt-4o",
		QualityMax:    "gpt-4o",
	},
	ProviderOpenRouter: {
		QualityLite:   "google/gemini-2.5-flash-lite",
		QualityNormal: "google/gemini-2.5-flash",
		QualityMax:    "anthropic/claude-sonnet-4.5",
	},
	ProviderOllama: {
		QualityLite:   "llama3.2",
		QualityNormal: "llama3.1",
		QualityMax:    "llama3.1:70b",
	},
}

// DefaultExcludes are glob patterns the check command skips by default.
var DefaultExcludes = []string{
	"node_modules/**",
	"vendor/**",
	".git/**",
	"dist/**",
	"build/**",
	"CHANGELOG.md",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGoogle,
		Model:    qualityPresets[ProviderGoogle][QualityLite],
		Quality:  QualityLite,
		Server: ServerConfig{
			Host:            "",
			Port:            9002,
			AllowedOrigins:  []string{"*"},
			RequestTimeoutS: 60,
		},
		Flows: FlowsConfig{
			StylingPolicy: "model",
			Temperature:   0.2,
			MaxTokens:     4096,
			RateLimitRPM:  60,
		},
		Check: CheckConfig{
			Include: []string{"**"},
			Exclude: DefaultExcludes,
		},
	}
}

// PresetModel returns the model for a provider and tier, falling back to
// the Google normal-tier model for unknown combinations.
func PresetModel(provider ProviderType, tier QualityTier) string {
	if tiers, ok := qualityPresets[provider]; ok {
		if model, ok := tiers[tier]; ok {
			return model
		}
	}
	return qualityPresets[ProviderGoogle][QualityNormal]
}
