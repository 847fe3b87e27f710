package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const maxResponseBytes = 16 << 20

// HTTPTransport posts each call to the node's HTTP endpoint. It is safe for concurrent use.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
}

// NewHTTPTransport constructs an HTTP transport; a nil client falls back to http.DefaultClient.
func NewHTTPTransport(endpoint string, client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{endpoint: endpoint, client: client}
}

// Call performs one JSON-RPC request.
func (t *HTTPTransport) Call(ctx context.Context, method string, params []any, result any) error {
	req := newRequest(method, params)
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", method, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", method, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer httpResp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s: read response: %w", method, err)
	}

	var resp response
	if err := json.Unmarshal(payload, &resp); err != nil {
		if httpResp.StatusCode != http.StatusOK {
			return fmt.Errorf("%s: unexpected status %s", method, httpResp.Status)
		}
		return fmt.Errorf("%s: decode response: %w", method, err)
	}
	if got := idOf(resp.ID); resp.Error == nil && got != req.ID {
		return fmt.Errorf("%s: response id %q does not match request id %q", method, got, req.ID)
	}
	return decodeResult(method, resp, result)
}

// Close is a no-op; idle connections belong to the http.Client.
func (t *HTTPTransport) Close() error {
	return nil
}
