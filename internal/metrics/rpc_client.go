package metrics

import (
	"time"

	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinmerger",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node and wallet connector operations.",
	}, []string{"client", "operation", "environment", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinmerger",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node and wallet connector operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"client", "operation", "environment", "status"})
)

// RPCClient tracks metrics for calls made by one remote client.
type RPCClient struct {
	client      string
	environment model.Environment
}

// NewRPCClient constructs a metrics collector for calls of the named client.
func NewRPCClient(client string, environment model.Environment) *RPCClient {
	if client == "" {
		client = "unknown"
	}
	if environment == "" {
		environment = "unknown"
	}
	return &RPCClient{client: client, environment: environment}
}

// Observe records a single call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	rpcRequestsTotal.WithLabelValues(m.client, operation, string(m.environment), status).Inc()
	rpcRequestDuration.WithLabelValues(m.client, operation, string(m.environment), status).Observe(time.Since(started).Seconds())
}
