package rpc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// NewTransport picks the transport from the endpoint scheme: http(s) posts each call,
// ws(s) keeps one connection open.
func NewTransport(ctx context.Context, endpoint string, httpClient *http.Client) (Transport, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return NewHTTPTransport(endpoint, httpClient), nil
	case "ws", "wss":
		ws, err := DialWebSocket(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		return ws, nil
	default:
		return nil, fmt.Errorf("unsupported endpoint scheme %q", u.Scheme)
	}
}
