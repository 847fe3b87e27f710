package rpc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/websocket"
)

// nodeHandler answers one method with a raw JSON result or an error object.
type nodeHandler func(params []json.RawMessage) (json.RawMessage, *Error)

func result(raw string) nodeHandler {
	return func([]json.RawMessage) (json.RawMessage, *Error) {
		return json.RawMessage(raw), nil
	}
}

func failure(code int, msg string) nodeHandler {
	return func([]json.RawMessage) (json.RawMessage, *Error) {
		return nil, &Error{Code: code, Message: msg}
	}
}

type wireRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

type wireResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

func answer(t *testing.T, handlers map[string]nodeHandler, req wireRequest) wireResponse {
	t.Helper()
	if req.JSONRPC != "2.0" {
		t.Errorf("request jsonrpc = %q, want 2.0", req.JSONRPC)
	}
	resp := wireResponse{JSONRPC: "2.0", ID: req.ID}
	h, ok := handlers[req.Method]
	if !ok {
		resp.Error = &Error{Code: CodeMethodNotFound, Message: "Method not found"}
		return resp
	}
	resp.Result, resp.Error = h(req.Params)
	return resp
}

// newHTTPNode serves handlers over JSON-RPC on plain HTTP.
func newHTTPNode(t *testing.T, handlers map[string]nodeHandler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("request method = %s, want POST", r.Method)
		}
		var req wireRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(answer(t, handlers, req))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newWSNode serves handlers over JSON-RPC on a WebSocket. Each response is preceded
// by an unrelated notification frame.
func newWSNode(t *testing.T, handlers map[string]nodeHandler) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		for {
			var req wireRequest
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			notification := map[string]any{"jsonrpc": "2.0", "method": "chain_newHead", "params": map[string]any{"subscription": "abc"}}
			if err := conn.WriteJSON(notification); err != nil {
				return
			}
			if err := conn.WriteJSON(answer(t, handlers, req)); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}
