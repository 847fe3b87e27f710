package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jitcord",
		Subsystem: "rpc_client",
		Name:      "calls_total",
		Help:      "Count of State Chain node RPC calls.",
	}, []string{"method", "network", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "jitcord",
		Subsystem: "rpc_client",
		Name:      "call_duration_seconds",
		Help:      "Duration of State Chain node RPC calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "network", "status"})
)

// RPCClient tracks metrics for RPC calls to the node.
type RPCClient struct {
	network string
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(network string) *RPCClient {
	if network == "" {
		network = "unknown"
	}
	return &RPCClient{network: network}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(method string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	rpcRequestsTotal.WithLabelValues(method, m.network, status).Inc()
	rpcRequestDuration.WithLabelValues(method, m.network, status).Observe(time.Since(started).Seconds())
}
