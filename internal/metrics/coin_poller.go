package metrics

import (
	"time"

	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinmerger",
		Subsystem: "coin_poller",
		Name:      "polls_total",
		Help:      "Count of coin list refreshes.",
	}, []string{"environment", "status"})

	pollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinmerger",
		Subsystem: "coin_poller",
		Name:      "poll_duration_seconds",
		Help:      "Duration of coin list refreshes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"environment", "status"})

	pollCoins = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "coinmerger",
		Subsystem: "coin_poller",
		Name:      "coins",
		Help:      "Number of base asset coins seen by the last successful refresh.",
	}, []string{"environment"})
)

// CoinPoller tracks metrics for the coin polling loop.
type CoinPoller struct {
	environment model.Environment
}

// NewCoinPoller constructs a CoinPoller collector.
func NewCoinPoller(environment model.Environment) *CoinPoller {
	if environment == "" {
		environment = "unknown"
	}
	return &CoinPoller{environment: environment}
}

// ObservePoll records one refresh.
func (m CoinPoller) ObservePoll(err error, coins int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	pollTotal.WithLabelValues(string(m.environment), status).Inc()
	pollDuration.WithLabelValues(string(m.environment), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		pollCoins.WithLabelValues(string(m.environment)).Set(float64(coins))
	}
}
