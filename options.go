package pershout

import "github.com/doccosmos/pershout/distance"

type options struct {
	k                int
	metric           distance.Metric
	metricParams     *distance.Params
	parallelism      int
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		k:                20,
		metric:           distance.MetricEuclidean,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a pipeline run. Configuration is scoped to a single Run
// call; there is no package-level mutable state.
type Option func(*options)

// WithK sets the neighbor count used when building the k-NN graph.
// Must satisfy 1 <= k <= N-1.
func WithK(k int) Option {
	return func(o *options) {
		o.k = k
	}
}

// WithMetric selects the pairwise distance metric.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithMinkowskiP sets the Minkowski exponent. Only consumed when the metric
// is distance.MetricMinkowski.
func WithMinkowskiP(p float64) Option {
	return func(o *options) {
		o.metricParams = &distance.Params{P: p}
	}
}

// WithParallelism bounds the number of concurrent neighbor scans.
// Zero or negative means GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithLogger sets the logger for stage-level progress logging.
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector sets the collector notified after each stage.
// If nil is passed, the no-op collector is used.
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metricsCollector = c
	}
}
