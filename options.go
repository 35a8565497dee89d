package patchbay

import "pipelined.dev/patchbay/metric"

// Option provides a way to set functional parameters to graph.
type Option func(*Graph)

// WithName sets name to Graph.
func WithName(n string) Option {
	return func(g *Graph) {
		g.name = n
	}
}

// WithLogger sets logger to Graph. If this option is not provided, silent
// logger is used.
func WithLogger(l Logger) Option {
	return func(g *Graph) {
		g.log = l
	}
}

// WithMetric adds meters for this graph and all its nodes.
func WithMetric(m *metric.Metric) Option {
	return func(g *Graph) {
		g.metric = m
	}
}
