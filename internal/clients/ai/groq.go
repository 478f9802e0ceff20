// Package ai wraps the Groq chat-completions API, used to generate a short
// motivational phrase when no custom quotes are stored.
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
)

const (
	DefaultAPIURL = "https://api.groq.com/openai/v1/chat/completions"
	DefaultModel  = "llama-3.3-70b-versatile"
)

type Client struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		apiURL: DefaultAPIURL,
		model:  DefaultModel,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithURL is used by tests to point at a stub server.
func NewClientWithURL(apiKey, apiURL string) *Client {
	c := NewClient(apiKey)
	c.apiURL = apiURL
	return c
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// MotivationalQuote asks the model for one short fitness phrase.
func (c *Client) MotivationalQuote(ctx context.Context) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("groq: no api key")
	}
	out, err := c.chat(ctx, []Message{
		{Role: "system", Content: "You write one-line motivational phrases for a fitness studio. Reply with the phrase only, no quotes."},
		{Role: "user", Content: "Give me one short motivational phrase for today's trainees."},
	}, 0.9)
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(out), `"`), nil
}

func (c *Client) chat(ctx context.Context, messages []Message, temperature float64) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   100,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("groq: bad response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("groq: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("groq: empty response")
	}
	return parsed.Choices[0].Message.Content, nil
}
