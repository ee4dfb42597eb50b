package engine

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus instrumentation an Engine updates as it
// runs analyses. Registering this into a caller-supplied Registerer
// (rather than using the global DefaultRegisterer) keeps multiple
// Engine instances in the same process from colliding.
type Metrics struct {
	analysesTotal     *prometheus.CounterVec
	nodesPropagated   prometheus.Counter
	propagationErrors *prometheus.CounterVec
	epsilonConsumed   prometheus.Histogram
}

// NewMetrics constructs and registers an Engine's metrics against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		analysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dpgraph",
			Name:      "analyses_total",
			Help:      "Total number of analyses validated, by outcome.",
		}, []string{"outcome"}),
		nodesPropagated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dpgraph",
			Name:      "nodes_propagated_total",
			Help:      "Total number of graph nodes that received a property.",
		}),
		propagationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dpgraph",
			Name:      "propagation_errors_total",
			Help:      "Total number of node propagation failures, by variant.",
		}, []string{"variant"}),
		epsilonConsumed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dpgraph",
			Name:      "epsilon_consumed",
			Help:      "Distribution of composed epsilon per analysis.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
	}
	reg.MustRegister(m.analysesTotal, m.nodesPropagated, m.propagationErrors, m.epsilonConsumed)
	return m
}
