// Package metric provides prometheus meters for graph processing.
package metric

import (
	"reflect"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "patchbay"

const (
	// ResultOK labels successful order computations.
	ResultOK = "ok"
	// ResultFailed labels failed order computations.
	ResultFailed = "failed"
)

// Metric holds graph counters. Nil Metric discards all measurements.
type Metric struct {
	passes       prometheus.Counter
	passDuration prometheus.Histogram
	runs         *prometheus.CounterVec
	samples      *prometheus.CounterVec
	orders       *prometheus.CounterVec
}

// MeasureFunc captures metrics when node is run.
type MeasureFunc func(samples int)

// New creates metric and registers its collectors in provided registerer.
func New(reg prometheus.Registerer) (*Metric, error) {
	m := &Metric{
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passes_total",
			Help:      "Number of completed processing passes.",
		}),
		passDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pass_duration_seconds",
			Help:      "Duration of processing passes.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "node_runs_total",
			Help:      "Number of node runs.",
		}, []string{"node_type"}),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_total",
			Help:      "Number of samples received by nodes.",
		}, []string{"node_type"}),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_computations_total",
			Help:      "Number of execution order computations.",
		}, []string{"result"}),
	}
	for _, c := range []prometheus.Collector{m.passes, m.passDuration, m.runs, m.samples, m.orders} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Meter creates new meter closure to capture node counters. Counters are
// labelled with the type of the node.
func (m *Metric) Meter(node interface{}) MeasureFunc {
	if m == nil {
		return func(int) {}
	}
	t := getType(node)
	runs := m.runs.WithLabelValues(t)
	samples := m.samples.WithLabelValues(t)
	return func(s int) {
		runs.Inc()
		samples.Add(float64(s))
	}
}

// Pass captures completed processing pass.
func (m *Metric) Pass(d time.Duration) {
	if m == nil {
		return
	}
	m.passes.Inc()
	m.passDuration.Observe(d.Seconds())
}

// Order captures order computation result.
func (m *Metric) Order(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.orders.WithLabelValues(ResultOK).Inc()
		return
	}
	m.orders.WithLabelValues(ResultFailed).Inc()
}

func getType(component interface{}) string {
	t := reflect.TypeOf(component)
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.String()
}
