// Package aigw is the HTTP client for the external recommendation and
// explanation service. Every call is a single attempt: failures are
// reported to the caller, never retried.
package aigw

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/origintrace/marketplace/internal/service/match"
)

// ErrGateway wraps every transport, status and parse failure from the
// AI service. These are recoverable and surfaced to the caller.
var ErrGateway = errors.New("ai gateway")

// The service is told to keep replies bounded; anything past this is
// discarded as malformed.
const maxResponseBytes = 1 << 20

type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type generateRequest struct {
	UserMessage string `json:"user_message"`
	FewShot     any    `json:"few_shot,omitempty"`
}

// Generate sends the user message (plus optional few-shot examples) and
// returns the raw response body.
func (c *Client) Generate(ctx context.Context, userMessage string, fewShot any) (string, error) {
	body, err := json.Marshal(generateRequest{UserMessage: userMessage, FewShot: fewShot})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", ErrGateway, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", ErrGateway, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: do request: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrGateway, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrGateway, resp.StatusCode)
	}
	return string(raw), nil
}

// GenerateSpec asks the service to turn a free-text query into a
// structured device specification.
func (c *Client) GenerateSpec(ctx context.Context, userMessage string) (match.Spec, error) {
	raw, err := c.Generate(ctx, userMessage, nil)
	if err != nil {
		return match.Spec{}, err
	}

	var envelope struct {
		Response match.Spec `json:"response"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return match.Spec{}, fmt.Errorf("%w: parse response: %v", ErrGateway, err)
	}
	return envelope.Response, nil
}
