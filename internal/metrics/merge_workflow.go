package metrics

import (
	"time"

	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mergeStepTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinmerger",
		Subsystem: "merge_workflow",
		Name:      "step_total",
		Help:      "Count of merge workflow steps by outcome.",
	}, []string{"environment", "step", "status"})

	mergeStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinmerger",
		Subsystem: "merge_workflow",
		Name:      "step_duration_seconds",
		Help:      "Duration of merge workflow steps.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"environment", "step", "status"})

	mergeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinmerger",
		Subsystem: "merge_workflow",
		Name:      "merges_total",
		Help:      "Count of merge attempts by result.",
	}, []string{"environment", "result"})

	mergeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinmerger",
		Subsystem: "merge_workflow",
		Name:      "merge_duration_seconds",
		Help:      "End to end duration of merge attempts, including finalization.",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
	}, []string{"environment", "result"})

	mergeInputs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinmerger",
		Subsystem: "merge_workflow",
		Name:      "merge_inputs",
		Help:      "Number of coins consumed per merge attempt.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"environment"})
)

// MergeWorkflow tracks metrics for coin merges.
type MergeWorkflow struct {
	environment model.Environment
}

// NewMergeWorkflow constructs a MergeWorkflow collector.
func NewMergeWorkflow(environment model.Environment) *MergeWorkflow {
	if environment == "" {
		environment = "unknown"
	}
	return &MergeWorkflow{environment: environment}
}

// ObserveStep records the outcome and duration of one workflow step.
func (m MergeWorkflow) ObserveStep(step string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	mergeStepTotal.WithLabelValues(string(m.environment), step, status).Inc()
	mergeStepDuration.WithLabelValues(string(m.environment), step, status).
		Observe(time.Since(started).Seconds())
}

// ObserveMerge records a finished merge attempt. result is "success" or the
// failure reason.
func (m MergeWorkflow) ObserveMerge(result string, inputs int, started time.Time) {
	mergeTotal.WithLabelValues(string(m.environment), result).Inc()
	mergeDuration.WithLabelValues(string(m.environment), result).
		Observe(time.Since(started).Seconds())
	if inputs > 0 {
		mergeInputs.WithLabelValues(string(m.environment)).Observe(float64(inputs))
	}
}
