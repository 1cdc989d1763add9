package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates the service configuration.
type Config struct {
	Server  ServerConfig
	AI      AIConfig
	Keyword KeywordConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		AI:      ai,
		Keyword: KeywordConfig{TablePath: strings.TrimSpace(os.Getenv("KEYWORD_TABLE_FILE"))},
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	origins := splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"))

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port, AllowedOrigins: origins}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port, AllowedOrigins: origins}, nil
}

// KeywordConfig points at an optional TOML reply table. Empty means the built-in one.
type KeywordConfig struct {
	TablePath string
}

// Provider names a model backend.
type Provider string

const (
	ProviderNone        Provider = ""
	ProviderAnthropic   Provider = "anthropic"
	ProviderOpenAI      Provider = "openai"
	ProviderGemini      Provider = "gemini"
	ProviderHuggingFace Provider = "huggingface"
	ProviderArk         Provider = "ark"
)

// detectionOrder is used when AI_PROVIDER is not set.
var detectionOrder = []Provider{
	ProviderAnthropic,
	ProviderOpenAI,
	ProviderGemini,
	ProviderHuggingFace,
	ProviderArk,
}

// AIConfig describes the model provider. At most one backend is wired.
type AIConfig struct {
	Provider Provider

	AnthropicAPIKey   string
	OpenAIAPIKey      string
	GeminiAPIKey      string
	HuggingFaceAPIKey string
	ArkAPIKey         string
	ArkAccessKey      string
	ArkSecretKey      string

	Model         string
	FallbackModel string
	BaseURL       string
	Region        string

	Temperature     float32
	MaxOutputTokens int
	HistoryLimit    int
	Timeout         time.Duration

	// Required turns a missing credential into a server fault instead of
	// silently answering from the keyword table.
	Required bool
}

// Enabled reports whether the selected provider has its credential.
func (c AIConfig) Enabled() bool {
	return c.Provider != ProviderNone && c.hasCredential(c.Provider)
}

func (c AIConfig) hasCredential(p Provider) bool {
	switch p {
	case ProviderAnthropic:
		return c.AnthropicAPIKey != ""
	case ProviderOpenAI:
		return c.OpenAIAPIKey != ""
	case ProviderGemini:
		return c.GeminiAPIKey != ""
	case ProviderHuggingFace:
		return c.HuggingFaceAPIKey != ""
	case ProviderArk:
		return c.ArkAPIKey != "" || (c.ArkAccessKey != "" && c.ArkSecretKey != "")
	default:
		return false
	}
}

// ModelOrDefault returns the configured model or the backend's default.
func (c AIConfig) ModelOrDefault() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModels[c.Provider]
}

// FallbackModelOrDefault returns the secondary model. Only Hugging Face has one by default.
func (c AIConfig) FallbackModelOrDefault() string {
	if c.FallbackModel != "" {
		return c.FallbackModel
	}
	return defaultFallbackModels[c.Provider]
}

// HistoryWindow returns how many turns are sent to the provider.
func (c AIConfig) HistoryWindow() int {
	if c.HistoryLimit > 0 {
		return c.HistoryLimit
	}
	if n, ok := defaultHistoryWindows[c.Provider]; ok {
		return n
	}
	return 6
}

var defaultModels = map[Provider]string{
	ProviderAnthropic:   "claude-3-haiku-20240307",
	ProviderOpenAI:      "gpt-4o-mini",
	ProviderGemini:      "gemini-2.0-flash",
	ProviderHuggingFace: "microsoft/DialoGPT-medium",
}

var defaultFallbackModels = map[Provider]string{
	ProviderHuggingFace: "gpt2",
}

var defaultHistoryWindows = map[Provider]int{
	ProviderAnthropic:   6,
	ProviderOpenAI:      10,
	ProviderGemini:      4,
	ProviderHuggingFace: 4,
	ProviderArk:         10,
}

func loadAIConfig() (AIConfig, error) {
	cfg := AIConfig{
		AnthropicAPIKey:   strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
		OpenAIAPIKey:      strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		GeminiAPIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		HuggingFaceAPIKey: strings.TrimSpace(os.Getenv("HUGGINGFACE_API_KEY")),
		ArkAPIKey:         strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		ArkAccessKey:      strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		ArkSecretKey:      strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:             strings.TrimSpace(os.Getenv("AI_MODEL")),
		FallbackModel:     strings.TrimSpace(os.Getenv("AI_FALLBACK_MODEL")),
		BaseURL:           strings.TrimSpace(os.Getenv("AI_BASE_URL")),
		Region:            getEnvOrDefault("ARK_REGION", "cn-beijing"),
	}

	// The original deployment used this placeholder to mean "no key".
	if cfg.AnthropicAPIKey == "fallback_mode" {
		cfg.AnthropicAPIKey = ""
	}

	provider, err := parseProvider(os.Getenv("AI_PROVIDER"))
	if err != nil {
		return AIConfig{}, err
	}
	if provider == ProviderNone {
		for _, p := range detectionOrder {
			if cfg.hasCredential(p) {
				provider = p
				break
			}
		}
	}
	cfg.Provider = provider

	temperature, err := parseOptionalFloatEnv("AI_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}
	cfg.Temperature = 0.7
	if temperature != nil {
		cfg.Temperature = float32(*temperature)
	}

	maxTokens, err := parseOptionalIntEnv("AI_MAX_OUTPUT_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}
	cfg.MaxOutputTokens = 200
	if maxTokens != nil && *maxTokens > 0 {
		cfg.MaxOutputTokens = *maxTokens
	}

	historyLimit, err := parseOptionalIntEnv("AI_HISTORY_LIMIT")
	if err != nil {
		return AIConfig{}, err
	}
	if historyLimit != nil {
		if *historyLimit < 1 {
			cfg.HistoryLimit = 1
		} else {
			cfg.HistoryLimit = *historyLimit
		}
	}

	timeout, err := parseDurationEnv("AI_TIMEOUT", 8*time.Second)
	if err != nil {
		return AIConfig{}, err
	}
	cfg.Timeout = timeout

	required, err := parseBoolEnv("AI_PROVIDER_REQUIRED", false)
	if err != nil {
		return AIConfig{}, err
	}
	cfg.Required = required

	return cfg, nil
}

func parseProvider(raw string) (Provider, error) {
	value := Provider(strings.ToLower(strings.TrimSpace(raw)))
	switch value {
	case ProviderNone, ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderHuggingFace, ProviderArk:
		return value, nil
	case "claude":
		return ProviderAnthropic, nil
	case "hf":
		return ProviderHuggingFace, nil
	default:
		return ProviderNone, fmt.Errorf("invalid AI_PROVIDER value %q", raw)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

// parseDurationEnv accepts Go durations ("8s") or a bare number of seconds.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	if secs, err := strconv.Atoi(raw); err == nil {
		if secs <= 0 {
			return defaultValue, nil
		}
		return time.Duration(secs) * time.Second, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if val <= 0 {
		return defaultValue, nil
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
