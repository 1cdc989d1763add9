package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/littlemoneyschool/tutor/backend/internal/model/chat"
)

const defaultHuggingFaceBaseURL = "https://api-inference.huggingface.co"

// HuggingFaceProvider calls the text-generation Inference API. Models there are
// plain continuations, so the conversation is flattened into one prompt.
type HuggingFaceProvider struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float32
	httpClient  *http.Client
}

// NewHuggingFaceProvider creates a provider. baseURL may be empty.
func NewHuggingFaceProvider(apiKey, model string, temperature float32, baseURL string) *HuggingFaceProvider {
	if baseURL == "" {
		baseURL = defaultHuggingFaceBaseURL
	}
	return &HuggingFaceProvider{
		apiKey:      apiKey,
		model:       model,
		baseURL:     strings.TrimRight(baseURL, "/"),
		temperature: temperature,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *HuggingFaceProvider) Name() string { return "huggingface:" + p.model }

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float32 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

// GenerateReply implements Provider.
func (p *HuggingFaceProvider) GenerateReply(ctx context.Context, systemPrompt string, turns []chat.Turn, maxOutput int) (string, error) {
	lines := make([]transcriptLine, 0, len(turns))
	for _, t := range turns {
		speaker := userSpeaker
		if t.Role == chat.RoleAssistant {
			speaker = assistantSpeaker
		}
		lines = append(lines, transcriptLine{speaker: speaker, text: t.Content})
	}

	body, err := json.Marshal(hfRequest{
		Inputs: transcript(systemPrompt, lines),
		Parameters: hfParameters{
			MaxNewTokens:   maxOutput,
			Temperature:    p.temperature,
			ReturnFullText: false,
		},
		Options: hfOptions{WaitForModel: true},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("huggingface: http error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("huggingface: read error: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Provider: "huggingface", Status: resp.StatusCode, Body: strings.TrimSpace(string(respBytes))}
	}

	return parseHuggingFaceOutput(respBytes)
}

// parseHuggingFaceOutput accepts the list form and the single-object form, and
// surfaces {"error": "..."} payloads as errors.
func parseHuggingFaceOutput(raw []byte) (string, error) {
	var list []hfGeneration
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return "", ErrEmptyReply
		}
		return cleanContinuation(list[0].GeneratedText)
	}

	var single struct {
		GeneratedText string `json:"generated_text"`
		Error         string `json:"error"`
	}
	if err := json.Unmarshal(raw, &single); err != nil {
		return "", fmt.Errorf("huggingface: malformed response: %w", err)
	}
	if single.Error != "" {
		return "", fmt.Errorf("huggingface: %s", single.Error)
	}
	return cleanContinuation(single.GeneratedText)
}

// cleanContinuation cuts the text where the model starts writing the child's next line.
func cleanContinuation(text string) (string, error) {
	if idx := strings.Index(text, "\n"+userSpeaker+":"); idx >= 0 {
		text = text[:idx]
	}
	return cleanReply(text)
}
