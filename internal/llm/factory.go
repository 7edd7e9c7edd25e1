package llm

import (
	"fmt"
	"os"
)

// NewProvider creates the provider named providerType using API keys from
// the environment. Supported: google, openai, openrouter, ollama.
func NewProvider(providerType, model string) (Provider, error) {
	switch providerType {
	case "google":
		key, err := requireEnv("GOOGLE_API_KEY")
		if err != nil {
			return nil, err
		}
		return NewGoogleProvider(key, model), nil

	case "openai":
		key, err := requireEnv("OPENAI_API_KEY")
		if err != nil {
			return nil, err
		}
		return NewOpenAIProvider(key, model), nil

	case "openrouter":
		key, err := requireEnv("OPENROUTER_API_KEY")
		if err != nil {
			return nil, err
		}
		return NewOpenAICompatibleProvider("openrouter", key, openRouterBaseURL, model), nil

	case "ollama":
		host := os.Getenv("OLLAMA_HOST")
		if host == "" {
			host = "http://localhost:11434"
		}
		return NewOllamaProvider(host, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}

func requireEnv(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("%s environment variable is not set", name)
	}
	return v, nil
}
