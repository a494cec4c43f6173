// Package dgraph talks to the Dgraph GraphQL endpoint that stores all
// competition data. Every read and write in the server goes through
// Client.Run; there is no other storage access.
package dgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// UpstreamError reports a failed call to the directory service: a
// transport failure, a non-2xx response, or a response carrying a
// non-empty GraphQL error list. Messages holds the upstream error
// messages, normalized away from the Dgraph error schema.
type UpstreamError struct {
	Status   int
	Messages []string
}

func (e *UpstreamError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("dgraph: request failed with status %d", e.Status)
	}
	return "dgraph: " + strings.Join(e.Messages, "; ")
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// Client posts GraphQL documents to a single endpoint. It performs no
// retries; cancellation and timeouts come from the caller's context.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{endpoint: endpoint, http: &http.Client{}}
}

// Run executes one query or mutation and unmarshals the response's data
// object into out (ignored when out is nil).
func (c *Client) Run(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": vars,
	})
	if err != nil {
		return fmt.Errorf("dgraph: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("dgraph: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &UpstreamError{Messages: []string{err.Error()}}
	}
	defer resp.Body.Close()

	var gr gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return &UpstreamError{Status: resp.StatusCode, Messages: []string{"unreadable response: " + err.Error()}}
	}

	if len(gr.Errors) > 0 {
		msgs := make([]string, 0, len(gr.Errors))
		for _, e := range gr.Errors {
			msgs = append(msgs, e.Message)
		}
		slog.Error("dgraph returned errors", "messages", msgs)
		return &UpstreamError{Status: resp.StatusCode, Messages: msgs}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Status: resp.StatusCode, Messages: []string{resp.Status}}
	}

	if out != nil && len(gr.Data) > 0 {
		if err := json.Unmarshal(gr.Data, out); err != nil {
			return fmt.Errorf("dgraph: decode data: %w", err)
		}
	}
	return nil
}
