package rpc

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"
)

type (
	// Transport carries a single JSON-RPC call to the node and decodes its result.
	Transport interface {
		Call(ctx context.Context, method string, params []any, result any) error
		Close() error
	}

	// Metrics records metrics for RPC calls.
	Metrics interface {
		Observe(method string, err error, started time.Time)
	}
)
