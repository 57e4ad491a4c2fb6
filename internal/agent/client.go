// Package agent provides the HTTP client for the hosted agent-orchestration
// framework that fronts the pathway search tool.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ernestocullari/audience-pathways/internal/common"
)

// Config holds hosted agent connection settings.
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Client forwards user messages to the hosted agent framework.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// NewClient creates a hosted agent client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: agent endpoint is required", common.ErrMissingConfig)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// Send posts a user message to the agent endpoint and returns its reply. The
// reply body is treated as opaque: a JSON object with a reply/output/message
// field is unwrapped, anything else comes back verbatim.
func (c *Client) Send(ctx context.Context, message string) (string, error) {
	requestBody := map[string]any{
		"message": message,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(string(jsonBody)))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrAgentUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", common.ErrAgentUpstream, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", common.ErrRateLimit
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", common.ErrAgentUpstream, resp.StatusCode, string(body))
	}

	return parseReply(body), nil
}

// parseReply unwraps the common reply envelope shapes agent frameworks use.
func parseReply(body []byte) string {
	var envelope struct {
		Reply   string `json:"reply"`
		Output  string `json:"output"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case envelope.Reply != "":
			return envelope.Reply
		case envelope.Output != "":
			return envelope.Output
		case envelope.Message != "":
			return envelope.Message
		}
	}

	return string(body)
}
