package config

import (
	"testing"
	"time"
)

var aiEnvKeys = []string{
	"AI_PROVIDER", "ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "HUGGINGFACE_API_KEY",
	"ARK_API_KEY", "ARK_ACCESS_KEY", "ARK_SECRET_KEY", "AI_MODEL", "AI_FALLBACK_MODEL",
	"AI_TEMPERATURE", "AI_MAX_OUTPUT_TOKENS", "AI_HISTORY_LIMIT", "AI_TIMEOUT", "AI_PROVIDER_REQUIRED",
	"PORT", "CORS_ALLOWED_ORIGINS", "KEYWORD_TABLE_FILE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range aiEnvKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaultsWithoutCredentials(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Enabled() {
		t.Fatal("expected AI disabled without credentials")
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected addr %s", cfg.Server.Addr)
	}
	if cfg.AI.MaxOutputTokens != 200 || cfg.AI.Timeout != 8*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg.AI)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Fatalf("unexpected origins: %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadDetectsProviderFromCredential(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "g-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Provider != ProviderOpenAI {
		t.Fatalf("expected openai, got %q", cfg.AI.Provider)
	}
	if !cfg.AI.Enabled() {
		t.Fatal("expected AI enabled")
	}
	if cfg.AI.HistoryWindow() != 10 {
		t.Fatalf("expected openai window 10, got %d", cfg.AI.HistoryWindow())
	}
	if cfg.AI.ModelOrDefault() != "gpt-4o-mini" {
		t.Fatalf("unexpected model %s", cfg.AI.ModelOrDefault())
	}
}

func TestLoadExplicitProviderWithoutKeyIsDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", "claude")
	t.Setenv("ANTHROPIC_API_KEY", "fallback_mode")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Provider != ProviderAnthropic {
		t.Fatalf("expected anthropic, got %q", cfg.AI.Provider)
	}
	if cfg.AI.Enabled() {
		t.Fatal("placeholder key must not enable the provider")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUGGINGFACE_API_KEY", "hf-test")
	t.Setenv("AI_HISTORY_LIMIT", "0")
	t.Setenv("AI_TIMEOUT", "3")
	t.Setenv("AI_MAX_OUTPUT_TOKENS", "150")
	t.Setenv("AI_PROVIDER_REQUIRED", "true")
	t.Setenv("PORT", "127.0.0.1:9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.HistoryWindow() != 1 {
		t.Fatalf("expected clamped window 1, got %d", cfg.AI.HistoryWindow())
	}
	if cfg.AI.Timeout != 3*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.AI.Timeout)
	}
	if cfg.AI.MaxOutputTokens != 150 || !cfg.AI.Required {
		t.Fatalf("unexpected ai config %+v", cfg.AI)
	}
	if cfg.AI.FallbackModelOrDefault() != "gpt2" {
		t.Fatalf("unexpected fallback model %s", cfg.AI.FallbackModelOrDefault())
	}
	if cfg.Server.Addr != "127.0.0.1:9090" || len(cfg.Server.AllowedOrigins) != 2 {
		t.Fatalf("unexpected server config %+v", cfg.Server)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"AI_PROVIDER":          "mystery",
		"AI_TEMPERATURE":       "warm",
		"AI_TIMEOUT":           "soon",
		"AI_PROVIDER_REQUIRED": "maybe",
		"PORT":                 "80 80",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoadClient(t *testing.T) {
	t.Setenv("CHAT_SERVER_URL", "http://tutor.test:8080/")
	t.Setenv("CHAT_TIMEOUT", "")

	cfg, err := LoadClient()
	if err != nil {
		t.Fatalf("LoadClient err: %v", err)
	}
	if cfg.ServerURL != "http://tutor.test:8080" || cfg.Timeout != 15*time.Second {
		t.Fatalf("unexpected client config %+v", cfg)
	}

	t.Setenv("CHAT_SERVER_URL", "not a url")
	if _, err := LoadClient(); err == nil {
		t.Fatal("expected error for invalid url")
	}
}
