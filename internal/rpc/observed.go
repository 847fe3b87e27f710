package rpc

import (
	"context"
	"time"
)

// ObservedTransport wraps a Transport with metrics instrumentation.
type ObservedTransport struct {
	transport Transport
	metrics   Metrics
}

// NewObservedTransport constructs an instrumented transport.
func NewObservedTransport(transport Transport, metrics Metrics) *ObservedTransport {
	return &ObservedTransport{
		transport: transport,
		metrics:   metrics,
	}
}

// Call forwards the call and records its outcome under the method name.
func (o *ObservedTransport) Call(ctx context.Context, method string, params []any, result any) (err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe(method, err, started)
	}()
	return o.transport.Call(ctx, method, params, result)
}

// Close closes the wrapped transport.
func (o *ObservedTransport) Close() error {
	return o.transport.Close()
}
