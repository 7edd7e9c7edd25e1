package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderGoogle {
		t.Errorf("expected default provider %q, got %q", ProviderGoogle, cfg.Provider)
	}
	if cfg.Model != "gemini-2.5-flash-lite" {
		t.Errorf("expected default model gemini-2.5-flash-lite, got %q", cfg.Model)
	}
	if cfg.Server.Port != 9002 {
		t.Errorf("expected default port 9002, got %d", cfg.Server.Port)
	}
	if cfg.Flows.StylingPolicy != "model" {
		t.Errorf("expected default styling policy model, got %q", cfg.Flows.StylingPolicy)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.mermaidviz.yml")

	original := DefaultConfig()
	original.Provider = ProviderOpenAI
	original.Model = "gpt-4o"
	original.Quality = QualityMax
	original.Server.Port = 8080
	original.Flows.StylingPolicy = "server"
	original.Flows.Temperature = 0.7
	original.Check.Include = []string{"docs/**", "*.mmd"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Provider != original.Provider {
		t.Errorf("provider: got %q, want %q", loaded.Provider, original.Provider)
	}
	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.Quality != original.Quality {
		t.Errorf("quality: got %q, want %q", loaded.Quality, original.Quality)
	}
	if loaded.Server.Port != 8080 {
		t.Errorf("server.port: got %d, want 8080", loaded.Server.Port)
	}
	if loaded.Flows.StylingPolicy != "server" {
		t.Errorf("flows.styling_policy: got %q, want server", loaded.Flows.StylingPolicy)
	}
	if loaded.Flows.Temperature != 0.7 {
		t.Errorf("flows.temperature: got %f, want 0.7", loaded.Flows.Temperature)
	}
	if strings.Join(loaded.Check.Include, ",") != "docs/**,*.mmd" {
		t.Errorf("check.include: got %v", loaded.Check.Include)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.Provider != ProviderGoogle {
		t.Errorf("expected defaults, got provider %q", cfg.Provider)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("server.port: got %d, want 7000", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeoutS != 60 || cfg.Flows.MaxTokens != 4096 {
		t.Errorf("unset keys should keep defaults: %+v %+v", cfg.Server, cfg.Flows)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MERMAIDVIZ_PROVIDER", "ollama")
	t.Setenv("MERMAIDVIZ_SERVER__PORT", "9090")
	t.Setenv("MERMAIDVIZ_FLOWS__STYLING_POLICY", "server")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Provider != ProviderOllama {
		t.Errorf("expected provider ollama from env, got %q", cfg.Provider)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090 from env, got %d", cfg.Server.Port)
	}
	if cfg.Flows.StylingPolicy != "server" {
		t.Errorf("expected styling policy server from env, got %q", cfg.Flows.StylingPolicy)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"MERMAIDVIZ_MODEL":                 "model",
		"MERMAIDVIZ_SERVER__PORT":          "server.port",
		"MERMAIDVIZ_FLOWS__RATE_LIMIT_RPM": "flows.rate_limit_rpm",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty provider", func(c *Config) { c.Provider = "" }, "provider is required"},
		{"invalid provider", func(c *Config) { c.Provider = "anthropic" }, "invalid provider"},
		{"empty model", func(c *Config) { c.Model = "" }, "model is required"},
		{"invalid quality", func(c *Config) { c.Quality = "ultra" }, "invalid quality"},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"negative timeout", func(c *Config) { c.Server.RequestTimeoutS = -1 }, "request_timeout_seconds"},
		{"bad policy", func(c *Config) { c.Flows.StylingPolicy = "client" }, "flows.styling_policy"},
		{"temperature", func(c *Config) { c.Flows.Temperature = 3 }, "flows.temperature"},
		{"negative tokens", func(c *Config) { c.Flows.MaxTokens = -1 }, "flows.max_tokens"},
		{"negative rpm", func(c *Config) { c.Flows.RateLimitRPM = -5 }, "flows.rate_limit_rpm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestAddrAndTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Host = "127.0.0.1"
	if cfg.Addr() != "127.0.0.1:9002" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.RequestTimeout().Seconds() != 60 {
		t.Errorf("RequestTimeout() = %v", cfg.RequestTimeout())
	}
}

func TestPresetModel(t *testing.T) {
	tests := []struct {
		provider ProviderType
		tier     QualityTier
		want     string
	}{
		{ProviderGoogle, QualityLite, "gemini-2.5-flash-lite"},
		{ProviderOpenAI, QualityLite, "gpt-4o-mini"},
		{ProviderOllama, QualityMax, "llama3.1:70b"},
		{"unknown", QualityNormal, "gemini-2.5-flash"},
		{ProviderOpenRouter, "unknown", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := PresetModel(tt.provider, tt.tier); got != tt.want {
			t.Errorf("PresetModel(%q, %q) = %q, want %q", tt.provider, tt.tier, got, tt.want)
		}
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	tests := map[ProviderType]string{
		ProviderGoogle:     "GOOGLE_API_KEY",
		ProviderOpenAI:     "OPENAI_API_KEY",
		ProviderOpenRouter: "OPENROUTER_API_KEY",
		ProviderOllama:     "",
	}
	for p, want := range tests {
		if got := APIKeyEnvVar(p); got != want {
			t.Errorf("APIKeyEnvVar(%q) = %q, want %q", p, got, want)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" docs/** , ,*.mmd,")
	if strings.Join(got, "|") != "docs/**|*.mmd" {
		t.Errorf("splitAndTrim() = %q", got)
	}
	if splitAndTrim("") != nil {
		t.Error("empty input should yield nil")
	}
}

func TestValidatePort(t *testing.T) {
	for _, ok := range []string{"1", "9002", "65535"} {
		if err := validatePort(ok); err != nil {
			t.Errorf("validatePort(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "0", "abc", "70000"} {
		if validatePort(bad) == nil {
			t.Errorf("validatePort(%q) should fail", bad)
		}
	}
}
