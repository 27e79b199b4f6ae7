package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Collector records pipeline and stage metrics.
type Collector struct {
	pipelineRunsTotal   *prometheus.CounterVec
	pipelineRunDuration *prometheus.HistogramVec

	stageExecutionsTotal   *prometheus.CounterVec
	stageExecutionDuration *prometheus.HistogramVec

	providerCallsTotal *prometheus.CounterVec

	logger *zap.Logger
}

// NewCollector creates a metrics collector. Passing a nil registerer uses
// the default Prometheus registry; tests pass their own to stay isolated.
func NewCollector(namespace string, reg prometheus.Registerer, logger *zap.Logger) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.pipelineRunsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_runs_total",
			Help:      "Total number of pipeline runs",
		},
		[]string{"platform", "status"},
	)

	c.pipelineRunDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_run_duration_seconds",
			Help:      "Pipeline run duration in seconds",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"platform"},
	)

	c.stageExecutionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_executions_total",
			Help:      "Total number of stage agent executions",
		},
		[]string{"stage", "status"},
	)

	c.stageExecutionDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_execution_duration_seconds",
			Help:      "Stage agent execution duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"stage"},
	)

	c.providerCallsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "Total number of external provider calls",
		},
		[]string{"provider", "capability", "status"},
	)

	logger.Info("metrics collector initialized", zap.String("namespace", namespace))

	return c
}

// RecordPipelineRun records a completed pipeline run.
func (c *Collector) RecordPipelineRun(platform, status string, duration time.Duration) {
	c.pipelineRunsTotal.WithLabelValues(platform, status).Inc()
	c.pipelineRunDuration.WithLabelValues(platform).Observe(duration.Seconds())
}

// RecordStageExecution records a stage agent execution.
func (c *Collector) RecordStageExecution(stage, status string, duration time.Duration) {
	c.stageExecutionsTotal.WithLabelValues(stage, status).Inc()
	c.stageExecutionDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordProviderCall records an external provider call.
func (c *Collector) RecordProviderCall(provider, capability, status string) {
	c.providerCallsTotal.WithLabelValues(provider, capability, status).Inc()
}
