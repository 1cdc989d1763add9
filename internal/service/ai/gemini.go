package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/littlemoneyschool/tutor/backend/internal/model/chat"
)

// GeminiProvider calls generateContent on the Gemini API.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiProvider creates a provider backed by the Gemini developer API. An empty
// baseURL uses the public endpoint.
func NewGeminiProvider(ctx context.Context, apiKey, model string, temperature float32, baseURL string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model, temperature: temperature}, nil
}

func (p *GeminiProvider) Name() string { return "gemini:" + p.model }

// GenerateReply implements Provider.
func (p *GeminiProvider) GenerateReply(ctx context.Context, systemPrompt string, turns []chat.Turn, maxOutput int) (string, error) {
	turns = trimLeadingAssistant(turns)
	if len(turns) == 0 {
		return "", fmt.Errorf("gemini: no user turn to answer")
	}

	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		var role genai.Role = genai.RoleUser
		if t.Role == chat.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Content, role))
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		MaxOutputTokens:   int32(maxOutput),
		Temperature:       genai.Ptr(p.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if resp == nil {
		return "", ErrEmptyReply
	}
	return cleanReply(resp.Text())
}
