// Package client talks to the tutor backend over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/littlemoneyschool/tutor/backend/internal/model/chat"
	"github.com/littlemoneyschool/tutor/backend/internal/model/tutor"
)

// ErrEmptyReply is returned when a 200 response has no reply text.
var ErrEmptyReply = errors.New("client: server returned an empty reply")

// StatusError is a non-200 answer. Reply carries the server's user-safe text, if any.
type StatusError struct {
	Status int
	Reply  string
	Reason string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("client: server responded %d: %s", e.Status, e.Reason)
}

// UserReply returns the text the server wanted shown for this failure.
func (e *StatusError) UserReply() string {
	return e.Reply
}

// Client calls the chat endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Resolve sends one message with the conversation so far and returns the reply text.
func (c *Client) Resolve(ctx context.Context, message string, history []chat.Turn) (string, error) {
	body, err := json.Marshal(chat.ClientRequest{Message: message, ConversationHistory: history})
	if err != nil {
		return "", fmt.Errorf("client: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ai-chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("client: send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("client: read response: %w", err)
	}

	var payload chat.Response
	decodeErr := json.Unmarshal(raw, &payload)

	if resp.StatusCode != http.StatusOK {
		serr := &StatusError{Status: resp.StatusCode, Reason: strings.TrimSpace(string(raw))}
		if decodeErr == nil {
			serr.Reply = payload.Response
			serr.Reason = payload.Error
		}
		return "", serr
	}
	if decodeErr != nil {
		return "", fmt.Errorf("client: decode response: %w", decodeErr)
	}
	if strings.TrimSpace(payload.Response) == "" {
		return "", ErrEmptyReply
	}
	return payload.Response, nil
}

// FetchTutor loads the tutor profile shown in the header and welcome bubble.
func (c *Client) FetchTutor(ctx context.Context) (tutor.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tutor", nil)
	if err != nil {
		return tutor.Profile{}, fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return tutor.Profile{}, fmt.Errorf("client: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return tutor.Profile{}, &StatusError{Status: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)}
	}

	var profile tutor.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return tutor.Profile{}, fmt.Errorf("client: decode profile: %w", err)
	}
	return profile, nil
}
