package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/littlemoneyschool/tutor/backend/internal/config"
	"github.com/littlemoneyschool/tutor/backend/internal/model/chat"
)

// ErrEmptyReply is returned when a provider answers without usable text.
var ErrEmptyReply = errors.New("provider returned no text")

// Provider generates one tutor reply from a system prompt and ordered turns. The
// last turn is the user's new message.
type Provider interface {
	Name() string
	GenerateReply(ctx context.Context, systemPrompt string, turns []chat.Turn, maxOutput int) (string, error)
}

// StatusError carries a non-success HTTP status from a provider.
type StatusError struct {
	Provider string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.Status, e.Body)
}

// HTTPStatusCode exposes the upstream status.
func (e *StatusError) HTTPStatusCode() int {
	return e.Status
}

// NewProviders builds the providers for the configured backend, in the order they
// should be tried. It returns nil when no credential is configured.
func NewProviders(ctx context.Context, cfg config.AIConfig) ([]Provider, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	model := cfg.ModelOrDefault()
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return []Provider{NewAnthropicProvider(cfg.AnthropicAPIKey, model, cfg.Temperature, cfg.BaseURL)}, nil
	case config.ProviderOpenAI:
		return []Provider{NewOpenAIProvider(cfg.OpenAIAPIKey, model, cfg.Temperature, cfg.BaseURL)}, nil
	case config.ProviderGemini:
		p, err := NewGeminiProvider(ctx, cfg.GeminiAPIKey, model, cfg.Temperature, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		return []Provider{p}, nil
	case config.ProviderHuggingFace:
		providers := []Provider{NewHuggingFaceProvider(cfg.HuggingFaceAPIKey, model, cfg.Temperature, cfg.BaseURL)}
		if fallback := cfg.FallbackModelOrDefault(); fallback != "" && fallback != model {
			providers = append(providers, NewHuggingFaceProvider(cfg.HuggingFaceAPIKey, fallback, cfg.Temperature, cfg.BaseURL))
		}
		return providers, nil
	case config.ProviderArk:
		chatModel, err := cfg.NewArkChatModel(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create ark chat model: %w", err)
		}
		p, err := NewArkProvider(ctx, chatModel, cfg.Model)
		if err != nil {
			return nil, err
		}
		return []Provider{p}, nil
	default:
		log.Printf("[ai] unknown provider %q, continuing without AI", cfg.Provider)
		return nil, nil
	}
}

// trimLeadingAssistant drops assistant turns before the first user turn. Chat APIs
// that require a user turn first reject such histories after window trimming.
func trimLeadingAssistant(turns []chat.Turn) []chat.Turn {
	for i, t := range turns {
		if t.Role == chat.RoleUser {
			return turns[i:]
		}
	}
	return nil
}

func cleanReply(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}
