package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ClientConfig configures the terminal chat client.
type ClientConfig struct {
	ServerURL string
	Timeout   time.Duration
	// LogFile receives log output while the terminal UI owns the screen. Empty discards it.
	LogFile string
}

// LoadClient reads the chat client configuration from environment variables.
func LoadClient() (*ClientConfig, error) {
	serverURL := strings.TrimRight(getEnvOrDefault("CHAT_SERVER_URL", "http://localhost:8080"), "/")
	parsed, err := url.Parse(serverURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid CHAT_SERVER_URL value %q", serverURL)
	}

	timeout, err := parseDurationEnv("CHAT_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	return &ClientConfig{
		ServerURL: serverURL,
		Timeout:   timeout,
		LogFile:   getEnvOrDefault("CHAT_LOG_FILE", ""),
	}, nil
}
