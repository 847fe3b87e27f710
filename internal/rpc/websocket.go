package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	handshakeTimeout = 10 * time.Second
	closeGracePeriod = time.Second
)

// ErrTransportClosed is returned by calls made after Close.
var ErrTransportClosed = errors.New("transport closed")

// WSTransport sends calls over a single WebSocket connection, one request in flight at a time.
// A connection that fails mid-call is dropped and the next call dials a new one.
type WSTransport struct {
	endpoint string

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

// DialWebSocket connects to the node's WebSocket endpoint.
func DialWebSocket(ctx context.Context, endpoint string) (*WSTransport, error) {
	conn, err := dialWebSocket(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return &WSTransport{endpoint: endpoint, conn: conn}, nil
}

func dialWebSocket(ctx context.Context, endpoint string) (*websocket.Conn, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeout,
		Proxy:            http.ProxyFromEnvironment,
	}
	conn, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}
	return conn, nil
}

// Call writes one request and reads frames until the matching response arrives.
// Frames carrying other ids, such as subscription notifications, are skipped.
func (t *WSTransport) Call(ctx context.Context, method string, params []any, result any) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("%s: %w", method, ErrTransportClosed)
	}
	if t.conn == nil {
		conn, err := dialWebSocket(ctx, t.endpoint)
		if err != nil {
			return fmt.Errorf("%s: reconnect: %w", method, err)
		}
		t.conn = conn
	}

	resp, err := t.roundTrip(ctx, t.conn, method, params)
	if err != nil {
		// The connection state is unknown after a failed read or write.
		t.drop()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", method, ctxErr)
		}
		return err
	}
	return decodeResult(method, resp, result)
}

func (t *WSTransport) roundTrip(ctx context.Context, conn *websocket.Conn, method string, params []any) (response, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
		_ = conn.SetReadDeadline(deadline)
	} else {
		_ = conn.SetWriteDeadline(time.Time{})
		_ = conn.SetReadDeadline(time.Time{})
	}

	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetReadDeadline(time.Now())
	})
	defer stop()

	req := newRequest(method, params)
	if err := conn.WriteJSON(req); err != nil {
		return response{}, fmt.Errorf("%s: write request: %w", method, err)
	}

	for {
		var resp response
		if err := conn.ReadJSON(&resp); err != nil {
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				return response{}, fmt.Errorf("%s: decode response: %w", method, err)
			}
			return response{}, fmt.Errorf("%s: read response: %w", method, err)
		}
		if idOf(resp.ID) == req.ID {
			return resp, nil
		}
		// An error the node could not attribute to a request id answers the only call in flight.
		if resp.Error != nil && isNullID(resp.ID) {
			return resp, nil
		}
	}
}

func (t *WSTransport) drop() {
	if t.conn == nil {
		return
	}
	_ = t.conn.Close()
	t.conn = nil
}

// Close sends a close frame and closes the connection. Later calls fail with ErrTransportClosed.
func (t *WSTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	if t.conn == nil {
		return nil
	}
	conn := t.conn
	t.conn = nil
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(closeGracePeriod),
	)
	return conn.Close()
}

func isNullID(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
