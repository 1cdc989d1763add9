package ai

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/littlemoneyschool/tutor/backend/internal/model/chat"
)

// AnthropicProvider calls the Messages API.
type AnthropicProvider struct {
	client      anthropic.Client
	model       string
	temperature float64
}

// NewAnthropicProvider creates a provider. baseURL may be empty.
func NewAnthropicProvider(apiKey, model string, temperature float32, baseURL string, opts ...option.RequestOption) *AnthropicProvider {
	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(1)}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	reqOpts = append(reqOpts, opts...)

	return &AnthropicProvider{
		client:      anthropic.NewClient(reqOpts...),
		model:       model,
		temperature: float64(temperature),
	}
}

func (p *AnthropicProvider) Name() string { return "anthropic:" + p.model }

// GenerateReply implements Provider.
func (p *AnthropicProvider) GenerateReply(ctx context.Context, systemPrompt string, turns []chat.Turn, maxOutput int) (string, error) {
	turns = trimLeadingAssistant(turns)
	if len(turns) == 0 {
		return "", fmt.Errorf("anthropic: no user turn to answer")
	}

	messages := make([]anthropic.MessageParam, 0, len(turns))
	for _, t := range turns {
		block := anthropic.NewTextBlock(t.Content)
		if t.Role == chat.RoleAssistant {
			messages = append(messages, anthropic.NewAssistantMessage(block))
		} else {
			messages = append(messages, anthropic.NewUserMessage(block))
		}
	}

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   int64(maxOutput),
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    messages,
		Temperature: anthropic.Float(p.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" && block.Text != "" {
			return cleanReply(block.Text)
		}
	}
	return "", ErrEmptyReply
}
