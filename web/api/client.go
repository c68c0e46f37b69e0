// Package api provides a client for communicating with the greeting API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is an API client for the greeting backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client. The client sets no timeout of its own;
// callers bound requests through the context when they need to.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// NewClientWithHTTPClient creates a client with a caller-supplied HTTP
// client. Tests use this to script transport behavior.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// helloResponse is the payload shape of GET /api/hello/.
type helloResponse struct {
	Message *string `json:"message"`
}

// Hello fetches the greeting message. It returns an error for transport
// failures, non-2xx statuses, undecodable bodies, and responses without a
// usable message field, so callers see a single failure path.
func (c *Client) Hello(ctx context.Context) (string, error) {
	var resp helloResponse
	if err := c.get(ctx, "/api/hello/", &resp); err != nil {
		return "", err
	}

	if resp.Message == nil {
		return "", fmt.Errorf("decoding response: missing message field")
	}
	if *resp.Message == "" {
		return "", fmt.Errorf("decoding response: empty message field")
	}

	return *resp.Message, nil
}

// Health probes the backend health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API error (%d)", resp.StatusCode)
	}

	return nil
}

// get performs a GET request and unmarshals the response.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
