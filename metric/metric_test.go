package metric_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipelined.dev/patchbay/metric"
)

type node struct{}

func TestMeter(t *testing.T) {
	var tests = []struct {
		component       interface{}
		runs            int
		samples         int
		label           string
		expectedRuns    float64
		expectedSamples float64
	}{
		{
			component:       int(1),
			runs:            10,
			samples:         100,
			label:           "int",
			expectedRuns:    10,
			expectedSamples: 1000,
		},
		{
			component:       &node{},
			runs:            3,
			samples:         512,
			label:           "metric_test.node",
			expectedRuns:    3,
			expectedSamples: 1536,
		},
	}
	for _, c := range tests {
		reg := prometheus.NewRegistry()
		m, err := metric.New(reg)
		require.NoError(t, err)

		measure := m.Meter(c.component)
		for i := 0; i < c.runs; i++ {
			measure(c.samples)
		}
		assert.Equal(t, c.expectedRuns, gatherValue(t, reg, "patchbay_node_runs_total", c.label))
		assert.Equal(t, c.expectedSamples, gatherValue(t, reg, "patchbay_samples_total", c.label))
	}
}

func TestPassAndOrder(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metric.New(reg)
	require.NoError(t, err)

	m.Pass(time.Millisecond)
	m.Pass(time.Millisecond)
	m.Order(true)
	m.Order(false)
	m.Order(false)

	count, err := testutil.GatherAndCount(reg, "patchbay_passes_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, float64(2), gatherValue(t, reg, "patchbay_passes_total", ""))
	assert.Equal(t, float64(1), gatherValue(t, reg, "patchbay_order_computations_total", metric.ResultOK))
	assert.Equal(t, float64(2), gatherValue(t, reg, "patchbay_order_computations_total", metric.ResultFailed))
}

func TestNilMetric(t *testing.T) {
	var m *metric.Metric
	assert.NotPanics(t, func() {
		m.Meter(&node{})(10)
		m.Pass(time.Second)
		m.Order(true)
	})
}

func TestDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metric.New(reg)
	require.NoError(t, err)
	_, err = metric.New(reg)
	assert.Error(t, err)
}

// gatherValue returns value of the metric series which has provided label
// value. Empty label matches series without labels.
func gatherValue(t *testing.T, reg *prometheus.Registry, name, label string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			if label != "" && (len(m.GetLabel()) == 0 || m.GetLabel()[0].GetValue() != label) {
				continue
			}
			if c := m.GetCounter(); c != nil {
				return c.GetValue()
			}
		}
	}
	t.Fatalf("metric %s{%s} not found", name, label)
	return 0
}
